package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/testhelpers"
	"github.com/craftnet/backend/internal/types"
)

func createUserWithProfile(t *testing.T, db *gorm.DB, username, name, job string) (*models.User, *models.Profile) {
	t.Helper()

	user := createUser(t, db, username)
	profile := models.Profile{
		UserID: user.ID,
		Name:   name,
		Job:    job,
	}
	require.NoError(t, db.Create(&profile).Error)
	return user, &profile
}

func TestProfileCounts(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	author, authorProfile := createUserWithProfile(t, db, "author", "The Author", "Writer")
	fan, _ := createUserWithProfile(t, db, "fan", "The Fan", "Reader")

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Post{OwnerID: author.ID, Title: "post"}).Error)
	}
	require.NoError(t, db.Create(&models.Follower{OwnerID: fan.ID, FollowedID: author.ID}).Error)
	require.NoError(t, db.Create(&models.Approval{OwnerID: fan.ID, ProfileID: authorProfile.ID}).Error)

	fetched, err := svc.Get(ctx, authorProfile.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fetched.PostsCount)
	assert.Equal(t, int64(1), fetched.FollowersCount)
	assert.Equal(t, int64(0), fetched.FollowingCount)
	assert.Equal(t, int64(1), fetched.ApprovalCount)

	byUser, err := svc.GetByUser(ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byUser.FollowingCount)
}

func TestProfileListSearch(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	createUserWithProfile(t, db, "mariab", "Maria Beck", "Carpenter")
	createUserWithProfile(t, db, "stefank", "Stefan Kurz", "Electrician")

	owner := createUser(t, db, "companyowner")
	company := models.Company{OwnerID: owner.ID, Name: "Beck Woodworks", Location: "Hamburg"}
	require.NoError(t, db.Create(&company).Error)
	ownerProfile := models.Profile{UserID: owner.ID, Name: "Owner", EmployerID: &company.ID}
	require.NoError(t, db.Create(&ownerProfile).Error)

	// By job, case insensitive.
	profiles, err := svc.List(ctx, service.ProfileListOptions{Search: "CARpenter"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Maria Beck", profiles[0].Name)

	// By username.
	profiles, err = svc.List(ctx, service.ProfileListOptions{Search: "stefank"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)

	// By employer location.
	profiles, err = svc.List(ctx, service.ProfileListOptions{Search: "hamburg"})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Owner", profiles[0].Name)

	profiles, err = svc.List(ctx, service.ProfileListOptions{Search: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestProfileListCountOrdering(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	quiet, _ := createUserWithProfile(t, db, "quiet", "Quiet", "")
	busy, _ := createUserWithProfile(t, db, "busy", "Busy", "")
	_ = quiet

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Post{OwnerID: busy.ID, Title: "post"}).Error)
	}

	profiles, err := svc.List(ctx, service.ProfileListOptions{Ordering: "-posts_count"})
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Busy", profiles[0].Name)

	profiles, err = svc.List(ctx, service.ProfileListOptions{Ordering: "posts_count"})
	require.NoError(t, err)
	assert.Equal(t, "Quiet", profiles[0].Name)
}

func TestProfileFollowerFilters(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	follower, _ := createUserWithProfile(t, db, "follower", "Follower", "")
	followed, _ := createUserWithProfile(t, db, "followed", "Followed", "")
	createUserWithProfile(t, db, "bystander", "Bystander", "")

	require.NoError(t, db.Create(&models.Follower{OwnerID: follower.ID, FollowedID: followed.ID}).Error)

	// Who follows followed?
	profiles, err := svc.List(ctx, service.ProfileListOptions{FollowedBy: &followed.ID})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Follower", profiles[0].Name)

	// Whom does follower follow?
	profiles, err = svc.List(ctx, service.ProfileListOptions{Following: &follower.ID})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "Followed", profiles[0].Name)
}

func TestProfileUpdate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	user, profile := createUserWithProfile(t, db, "mariab", "Maria Beck", "Carpenter")
	stranger := createUser(t, db, "stranger")

	owner := createUser(t, db, "companyowner")
	company := models.Company{OwnerID: owner.ID, Name: "Beck Woodworks", Location: "Hamburg"}
	require.NoError(t, db.Create(&company).Error)

	name := "Maria B."
	employerID := company.ID.String()
	updated, err := svc.Update(ctx, user.ID, profile.ID, &types.UpdateProfileRequest{
		Name:       &name,
		EmployerID: &employerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria B.", updated.Name)
	require.NotNil(t, updated.EmployerID)
	assert.Equal(t, company.ID, *updated.EmployerID)
	require.NotNil(t, updated.Employer)
	assert.Equal(t, "Beck Woodworks", updated.Employer.Name)

	// Unset fields stay untouched.
	assert.Equal(t, "Carpenter", updated.Job)

	// Clearing the employer.
	empty := ""
	updated, err = svc.Update(ctx, user.ID, profile.ID, &types.UpdateProfileRequest{
		EmployerID: &empty,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.EmployerID)

	// Strangers may not update it.
	_, err = svc.Update(ctx, stranger.ID, profile.ID, &types.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Unknown employer id.
	bogus := "00000000-0000-0000-0000-000000000001"
	_, err = svc.Update(ctx, user.ID, profile.ID, &types.UpdateProfileRequest{EmployerID: &bogus})
	assert.ErrorIs(t, err, service.ErrNotFound)
}
