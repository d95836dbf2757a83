package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/fansel/domburg-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLinkFixture(t *testing.T) (*mocks.MockLinkRepo, *mocks.MockMarkerRepo, *mocks.MockCalendarAPI, *LinkService) {
	t.Helper()
	links := mocks.NewMockLinkRepo(t)
	markers := mocks.NewMockMarkerRepo(t)
	cal := mocks.NewMockCalendarAPI(t)
	svc := NewLinkService(links, markers, cal, newTestLogger(t))
	return links, markers, cal, svc
}

func TestLinkService_Link_ReusesExistingColor(t *testing.T) {
	links, _, cal, svc := newLinkFixture(t)

	cal.EXPECT().GetEvent(mock.Anything, "e1").Return(&domain.CalendarEvent{ID: "e1", ColorID: "3"}, nil)
	cal.EXPECT().GetEvent(mock.Anything, "e2").Return(&domain.CalendarEvent{ID: "e2"}, nil)
	// only the uncolored member gets repainted
	cal.EXPECT().UpdateEvent(mock.Anything, "e2", mock.Anything).
		Run(func(ctx context.Context, eventID string, patch domain.EventPatch) {
			require.NotNil(t, patch.ColorID)
			assert.Equal(t, "3", *patch.ColorID)
		}).
		Return(true, nil)
	links.EXPECT().AddEdge(mock.Anything, "e1", "e2").Return(nil)

	err := svc.Link(context.Background(), []string{"e1", "e2"})

	require.NoError(t, err)
}

func TestLinkService_Link_FallbackColor(t *testing.T) {
	links, _, cal, svc := newLinkFixture(t)

	// informational color never becomes the group identity
	cal.EXPECT().GetEvent(mock.Anything, "e1").Return(&domain.CalendarEvent{ID: "e1", ColorID: domain.ColorInformational}, nil)
	cal.EXPECT().GetEvent(mock.Anything, "e2").Return(&domain.CalendarEvent{ID: "e2"}, nil)
	cal.EXPECT().UpdateEvent(mock.Anything, "e1", mock.Anything).Return(true, nil)
	cal.EXPECT().UpdateEvent(mock.Anything, "e2", mock.Anything).
		Run(func(ctx context.Context, eventID string, patch domain.EventPatch) {
			require.NotNil(t, patch.ColorID)
			assert.Equal(t, domain.ColorLinkedFallback, *patch.ColorID)
		}).
		Return(true, nil)
	links.EXPECT().AddEdge(mock.Anything, "e1", "e2").Return(nil)

	err := svc.Link(context.Background(), []string{"e1", "e2"})

	require.NoError(t, err)
}

func TestLinkService_Link_PersistsAllPairs(t *testing.T) {
	links, _, cal, svc := newLinkFixture(t)

	for _, id := range []string{"e1", "e2", "e3"} {
		cal.EXPECT().GetEvent(mock.Anything, id).Return(&domain.CalendarEvent{ID: id, ColorID: "4"}, nil)
	}
	links.EXPECT().AddEdge(mock.Anything, "e1", "e2").Return(nil)
	links.EXPECT().AddEdge(mock.Anything, "e1", "e3").Return(nil)
	links.EXPECT().AddEdge(mock.Anything, "e2", "e3").Return(nil)

	err := svc.Link(context.Background(), []string{"e1", "e2", "e3"})

	require.NoError(t, err)
}

func TestLinkService_Link_RequiresTwoEvents(t *testing.T) {
	_, _, _, svc := newLinkFixture(t)

	err := svc.Link(context.Background(), []string{"e1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotLinkable)
}

func TestLinkService_Link_EventNotFound(t *testing.T) {
	_, _, cal, svc := newLinkFixture(t)

	cal.EXPECT().GetEvent(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Link(context.Background(), []string{"missing", "e2"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestLinkService_Unlink_SingleEventLeavesRestOfGroup(t *testing.T) {
	links, markers, cal, svc := newLinkFixture(t)

	links.EXPECT().RemoveEdgesTouching(mock.Anything, "e2").Return(nil)
	cal.EXPECT().UpdateEvent(mock.Anything, "e2", mock.Anything).Return(true, nil)
	markers.EXPECT().DeleteNotifiedForEvents(mock.Anything, []string{"e2"}).Return(nil)

	err := svc.Unlink(context.Background(), []string{"e2"})

	require.NoError(t, err)
}

func TestLinkService_Unlink_SetRemovesOnlyEdgesAmong(t *testing.T) {
	links, markers, cal, svc := newLinkFixture(t)

	links.EXPECT().RemoveEdgesAmong(mock.Anything, []string{"e1", "e2"}).Return(nil)

	seen := map[string]string{}
	for _, id := range []string{"e1", "e2"} {
		id := id
		cal.EXPECT().UpdateEvent(mock.Anything, id, mock.Anything).
			Run(func(ctx context.Context, eventID string, patch domain.EventPatch) {
				require.NotNil(t, patch.ColorID)
				seen[eventID] = *patch.ColorID
			}).
			Return(true, nil)
	}
	markers.EXPECT().DeleteNotifiedForEvents(mock.Anything, []string{"e1", "e2"}).Return(nil)

	err := svc.Unlink(context.Background(), []string{"e1", "e2"})

	require.NoError(t, err)
	// freed events must stop sharing one color
	assert.NotEqual(t, seen["e1"], seen["e2"])
}

func TestLinkService_Unlink_RecolorFailureIsNotFatal(t *testing.T) {
	links, markers, cal, svc := newLinkFixture(t)

	links.EXPECT().RemoveEdgesTouching(mock.Anything, "e1").Return(nil)
	cal.EXPECT().UpdateEvent(mock.Anything, "e1", mock.Anything).Return(false, errors.New("api down"))
	markers.EXPECT().DeleteNotifiedForEvents(mock.Anything, []string{"e1"}).Return(nil)

	err := svc.Unlink(context.Background(), []string{"e1"})

	require.NoError(t, err)
}

func TestLinkService_Unlink_RequiresAtLeastOne(t *testing.T) {
	_, _, _, svc := newLinkFixture(t)

	err := svc.Unlink(context.Background(), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotLinkable)
}

func TestLinkService_AreGrouped_Transitive(t *testing.T) {
	links, _, _, svc := newLinkFixture(t)

	links.EXPECT().ListEdges(mock.Anything).Return([]domain.LinkedEventPair{
		{EventID1: "a", EventID2: "b"},
		{EventID1: "b", EventID2: "c"},
	}, nil)

	grouped, err := svc.AreGrouped(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.True(t, grouped)

	// b in the middle is not required to be part of the question
	grouped, err = svc.AreGrouped(context.Background(), []string{"a", "c"})
	require.NoError(t, err)
	assert.True(t, grouped)
}

func TestLinkService_AreGrouped_SeparateComponents(t *testing.T) {
	links, _, _, svc := newLinkFixture(t)

	links.EXPECT().ListEdges(mock.Anything).Return([]domain.LinkedEventPair{
		{EventID1: "a", EventID2: "b"},
		{EventID1: "c", EventID2: "d"},
	}, nil)

	grouped, err := svc.AreGrouped(context.Background(), []string{"a", "c"})

	require.NoError(t, err)
	assert.False(t, grouped)
}

func TestLinkService_AreGrouped_SingleIDTrivially(t *testing.T) {
	_, _, _, svc := newLinkFixture(t)

	grouped, err := svc.AreGrouped(context.Background(), []string{"a"})

	require.NoError(t, err)
	assert.True(t, grouped)
}
