package repositories_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"exercisetracker/internal/database"
	"exercisetracker/internal/models"
	"exercisetracker/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDSN(t *testing.T) string {
	return "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
}

type stores struct {
	users     repositories.UserRepository
	exercises repositories.ExerciseRepository
}

// backends returns a fresh memory store and a fresh in-memory sqlite store.
func backends() map[string]func(t *testing.T) stores {
	return map[string]func(t *testing.T) stores{
		"memory": func(t *testing.T) stores {
			return stores{
				users:     repositories.NewMemoryUserRepository(),
				exercises: repositories.NewMemoryExerciseRepository(),
			}
		},
		"sqlite": func(t *testing.T) stores {
			db, err := database.Open(database.DriverSQLite, memoryDSN(t))
			require.NoError(t, err)
			t.Cleanup(func() { _ = database.Close(db) })
			return stores{
				users:     repositories.NewGORMUserRepository(db),
				exercises: repositories.NewGORMExerciseRepository(db),
			}
		},
	}
}

func TestUserRepository_CreateAndLookup(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			user := &models.User{Username: "alice"}
			require.NoError(t, s.users.Create(ctx, user))
			assert.NotEmpty(t, user.ID)

			byID, err := s.users.GetByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, "alice", byID.Username)

			byName, err := s.users.GetByUsername(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, user.ID, byName.ID)

			_, err = s.users.GetByID(ctx, "missing")
			assert.ErrorIs(t, err, repositories.ErrNotFound)

			_, err = s.users.GetByUsername(ctx, "Alice")
			assert.ErrorIs(t, err, repositories.ErrNotFound, "usernames are case-sensitive")
		})
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			require.NoError(t, s.users.Create(ctx, &models.User{Username: "bob"}))
			err := s.users.Create(ctx, &models.User{Username: "bob"})
			assert.ErrorIs(t, err, repositories.ErrDuplicateUsername)

			require.NoError(t, s.users.Create(ctx, &models.User{Username: "Bob"}))
		})
	}
}

func TestUserRepository_GetAllInsertionOrder(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			for _, username := range []string{"zed", "amy", "mike"} {
				require.NoError(t, s.users.Create(ctx, &models.User{Username: username}))
				time.Sleep(2 * time.Millisecond)
			}

			users, err := s.users.GetAll(ctx)
			require.NoError(t, err)
			require.Len(t, users, 3)
			assert.Equal(t, "zed", users[0].Username)
			assert.Equal(t, "amy", users[1].Username)
			assert.Equal(t, "mike", users[2].Username)
		})
	}
}

func TestUserRepository_ConcurrentDuplicate(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			repo := open(t).users
			ctx := context.Background()

			const attempts = 20
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				dupes     int
			)
			for i := 0; i < attempts; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := repo.Create(ctx, &models.User{Username: "racer"})
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case errors.Is(err, repositories.ErrDuplicateUsername):
						dupes++
					}
				}()
			}
			wg.Wait()

			assert.Equal(t, 1, successes)
			assert.Equal(t, attempts-1, dupes)
			users, err := repo.GetAll(ctx)
			require.NoError(t, err)
			assert.Len(t, users, 1)
		})
	}
}

func TestMemoryUserRepository_ConcurrentDuplicateHighContention(t *testing.T) {
	repo := repositories.NewMemoryUserRepository()
	ctx := context.Background()

	const attempts = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.Create(ctx, &models.User{Username: "racer"}); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	users, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestExerciseRepository_GetByUser(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
			inputs := []models.Exercise{
				{UserID: "u1", Description: "swim", Duration: 20, Date: first.AddDate(0, 0, 5)},
				{UserID: "u2", Description: "bike", Duration: 45, Date: first},
				{UserID: "u1", Description: "run", Duration: 30, Date: first},
			}
			for i := range inputs {
				require.NoError(t, s.exercises.Create(ctx, &inputs[i]))
				assert.NotEmpty(t, inputs[i].ID)
				time.Sleep(2 * time.Millisecond)
			}

			got, err := s.exercises.GetByUser(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "swim", got[0].Description)
			assert.Equal(t, "run", got[1].Description)
			assert.True(t, first.Equal(got[1].Date))

			none, err := s.exercises.GetByUser(ctx, "nobody")
			require.NoError(t, err)
			assert.NotNil(t, none)
			assert.Empty(t, none)
		})
	}
}

func TestExerciseRepository_GetByUserSameTimestamp(t *testing.T) {
	for name, open := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := open(t)

			stamp := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
			descriptions := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
			for _, d := range descriptions {
				e := &models.Exercise{UserID: "u1", Description: d, Duration: 5, Date: stamp, CreatedAt: stamp}
				require.NoError(t, s.exercises.Create(ctx, e))
			}

			got, err := s.exercises.GetByUser(ctx, "u1")
			require.NoError(t, err)
			require.Len(t, got, len(descriptions))
			for i, e := range got {
				assert.Equal(t, descriptions[i], e.Description)
				if i > 0 {
					assert.Less(t, got[i-1].ID, e.ID)
				}
			}
		})
	}
}
