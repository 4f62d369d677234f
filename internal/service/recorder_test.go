package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/StartupsStudio/startups.org.ai-sub000/internal/domain"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/repository"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/storybrand"
	"github.com/StartupsStudio/startups.org.ai-sub000/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func TestRecord_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	rec := NewGenerationRecorder(testutil.NewTestUoW(database), "llama3.2", obs)
	ctx := context.Background()

	input := storybrand.Business{Name: "PayNudge", Product: "invoice reminders", Customer: "freelancers"}
	output := storybrand.OneLiner{Problem: "Chasing invoices", Solution: "PayNudge", Result: "Paid on time"}

	a, err := rec.Record(ctx, domain.FrameworkStoryBrand, "one_liner", input, output)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", a.Model)
	assert.Empty(t, a.KitID)

	stored, err := repository.NewSQLiteArtifactRepo(database).GetByID(ctx, a.ID)
	require.NoError(t, err)
	var got storybrand.OneLiner
	require.NoError(t, stored.Decode(&got))
	assert.Equal(t, output, got)
	assert.JSONEq(t, string(a.Input), string(stored.Input))

	require.Len(t, obs.events, 1)
	assert.Equal(t, "record-artifact", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "storybrand", obs.events[0].Fields["framework"])
}

func TestRecord_UnknownFramework(t *testing.T) {
	obs := &recordingObserver{}
	rec := NewGenerationRecorder(testutil.NewTestUoW(testutil.NewTestDB(t)), "m", obs)

	_, err := rec.Record(context.Background(), domain.Framework("tarot"), "reading", nil, map[string]string{})

	require.Error(t, err)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestRecord_UnencodableOutput(t *testing.T) {
	rec := NewGenerationRecorder(testutil.NewTestUoW(testutil.NewTestDB(t)), "m")

	_, err := rec.Record(context.Background(), domain.FrameworkLandingPage, "score", nil, math.Inf(1))

	assert.Error(t, err)
}

func TestRecordKit_SharesKitID(t *testing.T) {
	database := testutil.NewTestDB(t)
	rec := NewGenerationRecorder(testutil.NewTestUoW(database), "llama3.2")
	ctx := context.Background()

	artifacts, err := rec.RecordKit(ctx, []Generation{
		{Framework: domain.FrameworkStoryBrand, Kind: "brand_script", Output: map[string]string{"character": "freelancers"}},
		{Framework: domain.FrameworkLeanCanvas, Kind: "canvas", Output: map[string][]string{"problem": {"late pay"}}},
		{Framework: domain.FrameworkNaming, Kind: "names", Output: []string{"Nudgely"}},
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 3)
	kitID := artifacts[0].KitID
	require.NotEmpty(t, kitID)

	stored, err := repository.NewSQLiteArtifactRepo(database).List(ctx, repository.ArtifactFilter{KitID: kitID})
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestRecordKit_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	rec := NewGenerationRecorder(uow, "llama3.2")
	ctx := context.Background()

	_, err := rec.RecordKit(ctx, []Generation{
		{Framework: domain.FrameworkStoryBrand, Kind: "brand_script", Output: "a"},
		{Framework: domain.FrameworkLeanCanvas, Kind: "canvas", Output: "b"},
	})
	assert.ErrorIs(t, err, boom)

	all, err := repository.NewSQLiteArtifactRepo(database).List(ctx, repository.ArtifactFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "first artifact should be rolled back")
}
