package service

import (
	"testing"

	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/model"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/app/repository"
	"github.com/leadiaz/compra-tu-auto-app-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupReviewServiceTest(t *testing.T) (ReviewService, *gorm.DB, *model.User, *model.Vehicle) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	reviewRepo := repository.NewReviewRepository(testDB)
	vehicleRepo := repository.NewVehicleRepository(testDB)
	reviewService := NewReviewService(reviewRepo, vehicleRepo)

	user := model.NewUser("ana@example.com", "hash", "Ana", "García", "")
	require.NoError(t, testDB.Create(user).Error)

	vehicle := &model.Vehicle{Brand: "Toyota", Model: "Corolla", ModelYear: 2024}
	require.NoError(t, testDB.Create(vehicle).Error)

	return reviewService, testDB, user, vehicle
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	reviewService, _, user, vehicle := setupReviewServiceTest(t)

	review, err := reviewService.CreateReview(user.ID, vehicle.ID, 8, "Muy buen auto")
	require.NoError(t, err)
	assert.NotZero(t, review.ID)
	assert.Equal(t, 8, review.Score)
}

func TestReviewService_ScoreBoundaries(t *testing.T) {
	reviewService, testDB, _, vehicle := setupReviewServiceTest(t)

	tests := []struct {
		score   int
		wantErr error
	}{
		{0, nil},
		{10, nil},
		{-1, ErrInvalidScore},
		{11, ErrInvalidScore},
	}

	for i, tt := range tests {
		user := model.NewUser(
			string(rune('a'+i))+"@example.com", "hash", "Test", "User", "",
		)
		require.NoError(t, testDB.Create(user).Error)

		_, err := reviewService.CreateReview(user.ID, vehicle.ID, tt.score, "")
		if tt.wantErr == nil {
			assert.NoError(t, err, "score %d", tt.score)
		} else {
			assert.ErrorIs(t, err, tt.wantErr, "score %d", tt.score)
		}
	}
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	reviewService, _, user, vehicle := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 7, "Bien")
	require.NoError(t, err)

	_, err = reviewService.CreateReview(user.ID, vehicle.ID, 9, "Cambio de opinión")
	assert.ErrorIs(t, err, ErrReviewAlreadyExists)
}

func TestReviewService_CreateReview_VehicleNotFound(t *testing.T) {
	reviewService, _, user, _ := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, 9999, 5, "")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestReviewService_UpdateReview_ScopedToAuthor(t *testing.T) {
	reviewService, testDB, user, vehicle := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 7, "Bien")
	require.NoError(t, err)

	// Lookup is keyed by (user, vehicle): another user never reaches a
	// foreign review, their own is simply absent.
	other := model.NewUser("otro@example.com", "hash", "Otro", "Usuario", "")
	require.NoError(t, testDB.Create(other).Error)

	_, err = reviewService.UpdateReview(other.ID, vehicle.ID, 2, "No es mío")
	assert.ErrorIs(t, err, ErrReviewNotFound)

	updated, err := reviewService.UpdateReview(user.ID, vehicle.ID, 9, "Mejor de lo que pensaba")
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Score)
	assert.Equal(t, "Mejor de lo que pensaba", updated.Comment)
}

func TestReviewService_UpdateReview_InvalidScore(t *testing.T) {
	reviewService, _, user, vehicle := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 7, "Bien")
	require.NoError(t, err)

	_, err = reviewService.UpdateReview(user.ID, vehicle.ID, 11, "")
	assert.ErrorIs(t, err, ErrInvalidScore)
}

func TestReviewService_DeleteReview_ScopedToAuthor(t *testing.T) {
	reviewService, testDB, user, vehicle := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 7, "Bien")
	require.NoError(t, err)

	other := model.NewUser("otro@example.com", "hash", "Otro", "Usuario", "")
	require.NoError(t, testDB.Create(other).Error)

	err = reviewService.DeleteReview(other.ID, vehicle.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	require.NoError(t, reviewService.DeleteReview(user.ID, vehicle.ID))

	err = reviewService.DeleteReview(user.ID, vehicle.ID)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_VehicleScore(t *testing.T) {
	reviewService, testDB, user, vehicle := setupReviewServiceTest(t)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 6, "")
	require.NoError(t, err)

	other := model.NewUser("otro@example.com", "hash", "Otro", "Usuario", "")
	require.NoError(t, testDB.Create(other).Error)
	_, err = reviewService.CreateReview(other.ID, vehicle.ID, 10, "")
	require.NoError(t, err)

	average, count, err := reviewService.VehicleScore(vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.InDelta(t, 8.0, average, 0.001)
}

func TestReviewService_TopRankedVehicles(t *testing.T) {
	reviewService, testDB, user, vehicle := setupReviewServiceTest(t)

	better := &model.Vehicle{Brand: "Honda", Model: "Civic", ModelYear: 2024}
	require.NoError(t, testDB.Create(better).Error)
	unreviewed := &model.Vehicle{Brand: "Fiat", Model: "Cronos", ModelYear: 2022}
	require.NoError(t, testDB.Create(unreviewed).Error)

	_, err := reviewService.CreateReview(user.ID, vehicle.ID, 5, "")
	require.NoError(t, err)
	_, err = reviewService.CreateReview(user.ID, better.ID, 9, "")
	require.NoError(t, err)

	rankings, err := reviewService.TopRankedVehicles(10)
	require.NoError(t, err)
	require.Len(t, rankings, 2)
	assert.Equal(t, better.ID, rankings[0].Vehicle.ID)
	assert.InDelta(t, 9.0, rankings[0].AverageScore, 0.001)
	assert.Equal(t, int64(1), rankings[0].ReviewCount)

	limited, err := reviewService.TopRankedVehicles(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
