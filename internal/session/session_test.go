package session

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/trickywords/internal/groups"
	"github.com/verte-zerg/trickywords/internal/model"
	"github.com/verte-zerg/trickywords/internal/order"
)

func fixtureCatalog(t *testing.T) *groups.Catalog {
	t.Helper()
	c, err := groups.NewCatalog(
		model.WordGroup{Name: "Blue", Color: model.Color{Background: "blue", Foreground: "white"}, Words: []string{"the", "to"}},
		model.WordGroup{Name: "Yellow", Words: []string{"said", "have", "like", "so", "do", "said"}},
		model.WordGroup{Name: "Empty"},
	)
	require.NoError(t, err)
	return c
}

func sorted(words []string) []string {
	out := append([]string(nil), words...)
	sort.Strings(out)
	return out
}

func TestSelectGroupStartsPass(t *testing.T) {
	c := New(fixtureCatalog(t), order.NewShuffle(3))
	require.True(t, c.SelectGroup("Yellow"))

	v := c.Snapshot()
	assert.Equal(t, InProgress, v.State)
	assert.Equal(t, "Yellow", v.Group)
	assert.Equal(t, 6, v.Total)
	assert.Equal(t, 0, v.Answered)
	assert.False(t, v.Review)
	assert.Empty(t, v.Correct)
	assert.Empty(t, v.Skipped)
	require.True(t, v.HasWord)
	assert.Equal(t, v.Remaining[0], v.CurrentWord)
	assert.Equal(t, sorted([]string{"said", "have", "like", "so", "do", "said"}), sorted(v.Remaining))
}

func TestSelectUnknownGroupIsIgnored(t *testing.T) {
	c := New(fixtureCatalog(t), order.Identity{})
	assert.False(t, c.SelectGroup("NoSuchGroup"))
	assert.Equal(t, Idle, c.State())
	_, ok := c.CurrentWord()
	assert.False(t, ok)

	require.True(t, c.SelectGroup("Blue"))
	require.True(t, c.MarkSkipped())
	before := c.Snapshot()
	assert.False(t, c.SelectGroup("NoSuchGroup"))
	assert.Equal(t, before, c.Snapshot())
}

func TestAnswerUntilDonePartitionsWords(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		c := New(fixtureCatalog(t), order.NewShuffle(seed))
		require.True(t, c.SelectGroup("Yellow"))
		start := c.Snapshot().Remaining

		for i := 0; c.State() == InProgress; i++ {
			if (int(seed)+i)%3 == 0 {
				c.MarkSkipped()
			} else {
				c.MarkCorrect()
			}
			v := c.Snapshot()
			answered := append(append(append([]string(nil), v.Correct...), v.Skipped...), v.Remaining...)
			assert.Equal(t, sorted(start), sorted(answered))
			if v.HasWord {
				assert.Equal(t, v.Remaining[0], v.CurrentWord)
			} else {
				assert.Empty(t, v.Remaining)
			}
		}

		v := c.Snapshot()
		assert.Equal(t, v.Total, len(v.Correct)+len(v.Skipped))
		assert.False(t, v.HasWord)
		assert.True(t, v.State.Done())
	}
}

func TestAnswerWithoutWordIsNoop(t *testing.T) {
	c := New(fixtureCatalog(t), order.Identity{})
	assert.False(t, c.MarkCorrect())
	assert.False(t, c.MarkSkipped())
	assert.Equal(t, View{State: Idle}, c.Snapshot())

	require.True(t, c.SelectGroup("Blue"))
	require.True(t, c.MarkCorrect())
	require.True(t, c.MarkCorrect())
	before := c.Snapshot()
	assert.False(t, c.MarkCorrect())
	assert.False(t, c.MarkSkipped())
	assert.Equal(t, before, c.Snapshot())
	assert.Equal(t, PassComplete, c.State())
}

func TestBlueScenario(t *testing.T) {
	c := New(fixtureCatalog(t), order.NewShuffle(0))
	require.True(t, c.SelectGroup("Blue"))

	first, ok := c.CurrentWord()
	require.True(t, ok)
	assert.Contains(t, []string{"the", "to"}, first)
	assert.Equal(t, 2, c.Snapshot().Total)

	second := "the"
	if first == "the" {
		second = "to"
	}

	require.True(t, c.MarkSkipped())
	v := c.Snapshot()
	assert.Equal(t, []string{first}, v.Skipped)
	assert.Equal(t, second, v.CurrentWord)

	require.True(t, c.MarkCorrect())
	v = c.Snapshot()
	assert.False(t, v.HasWord)
	assert.Equal(t, []string{second}, v.Correct)
	assert.Equal(t, ReviewPrompt, v.State)
	assert.Equal(t, 1, v.SkippedCount())
}

func TestStartReview(t *testing.T) {
	c := New(fixtureCatalog(t), order.Identity{})
	require.True(t, c.SelectGroup("Yellow"))
	// said have like so do said
	c.MarkSkipped()
	c.MarkCorrect()
	c.MarkSkipped()
	c.MarkCorrect()
	c.MarkCorrect()
	c.MarkSkipped()
	require.Equal(t, ReviewPrompt, c.State())

	require.True(t, c.StartReview())
	v := c.Snapshot()
	assert.Equal(t, InProgress, v.State)
	assert.True(t, v.Review)
	assert.Equal(t, 3, v.Total)
	assert.Equal(t, []string{"said", "like", "said"}, v.Remaining)
	assert.Empty(t, v.Correct)
	assert.Empty(t, v.Skipped)
	assert.Equal(t, "Yellow", v.Group)

	c.MarkSkipped()
	c.MarkCorrect()
	c.MarkCorrect()
	assert.Equal(t, PassComplete, c.State())
	assert.False(t, c.StartReview(), "review of a review pass is not offered")
}

func TestStartReviewRequiresSkippedWords(t *testing.T) {
	c := New(fixtureCatalog(t), order.Identity{})
	assert.False(t, c.StartReview())

	require.True(t, c.SelectGroup("Blue"))
	assert.False(t, c.StartReview(), "pass still in progress")
	c.MarkCorrect()
	c.MarkCorrect()
	assert.Equal(t, PassComplete, c.State())
	assert.False(t, c.StartReview())
}

func TestResetFromAnyState(t *testing.T) {
	steps := map[string]func(c *Controller){
		"idle":        func(*Controller) {},
		"in-progress": func(c *Controller) { c.SelectGroup("Blue") },
		"review-prompt": func(c *Controller) {
			c.SelectGroup("Blue")
			c.MarkSkipped()
			c.MarkSkipped()
		},
		"review": func(c *Controller) {
			c.SelectGroup("Blue")
			c.MarkSkipped()
			c.MarkCorrect()
			c.StartReview()
		},
		"empty": func(c *Controller) { c.SelectGroup("Empty") },
	}
	for name, setup := range steps {
		t.Run(name, func(t *testing.T) {
			c := New(fixtureCatalog(t), order.Identity{})
			setup(c)
			c.Reset()
			assert.Equal(t, View{State: Idle}, c.Snapshot())
			assert.Equal(t, "", c.Group())
		})
	}
}

func TestProgress(t *testing.T) {
	c := New(fixtureCatalog(t), order.Identity{})
	_, ok := c.Progress()
	assert.False(t, ok)

	require.True(t, c.SelectGroup("Blue"))
	p, ok := c.Progress()
	require.True(t, ok)
	assert.InDelta(t, 0.0, p, 1e-9)
	c.MarkSkipped()
	p, _ = c.Progress()
	assert.InDelta(t, 0.5, p, 1e-9)
	c.MarkCorrect()
	p, _ = c.Progress()
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestEmptyGroup(t *testing.T) {
	c := New(fixtureCatalog(t), order.NewShuffle(1))
	require.True(t, c.SelectGroup("Empty"))
	v := c.Snapshot()
	assert.Equal(t, PassComplete, v.State)
	assert.False(t, v.HasWord)
	assert.False(t, v.HasProgress)
	assert.Equal(t, 0, v.Total)
	assert.False(t, c.MarkCorrect())
	assert.False(t, c.StartReview())
}

func TestSliceOrderer(t *testing.T) {
	c := New(fixtureCatalog(t), order.Slice{Size: 3})
	require.True(t, c.SelectGroup("Yellow"))
	v := c.Snapshot()
	assert.Equal(t, []string{"said", "have", "like"}, v.Remaining)
	assert.Equal(t, 3, v.Total)
}

func TestNilOrdererKeepsCatalogOrder(t *testing.T) {
	c := New(fixtureCatalog(t), nil)
	require.True(t, c.SelectGroup("Blue"))
	w, _ := c.CurrentWord()
	assert.Equal(t, "the", w)
}

func TestEvents(t *testing.T) {
	var events []Event
	c := New(fixtureCatalog(t), order.Identity{}, WithListener(func(ev Event) {
		events = append(events, ev)
	}))
	c.Subscribe(nil)

	c.SelectGroup("Blue")
	c.MarkSkipped()
	c.MarkCorrect()
	c.StartReview()
	c.MarkCorrect()
	c.MarkCorrect() // no-op, no event
	c.Reset()

	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []EventKind{
		EventGroupSelected,
		EventWordSkipped,
		EventWordKnown,
		EventPassComplete,
		EventReviewStarted,
		EventWordKnown,
		EventPassComplete,
		EventReset,
	}, kinds)

	assert.Equal(t, "the", events[1].Word)
	first := events[3].Summary
	assert.Equal(t, []string{"the"}, first.Skipped)
	assert.Equal(t, []string{"to"}, first.Correct)
	assert.False(t, first.Review)
	assert.True(t, events[6].Summary.Review)
	assert.Equal(t, "Blue", events[7].Group)
}

func TestEmptyGroupEmitsPassComplete(t *testing.T) {
	var kinds []EventKind
	c := New(fixtureCatalog(t), nil, WithListener(func(ev Event) { kinds = append(kinds, ev.Kind) }))
	c.SelectGroup("Empty")
	assert.Equal(t, []EventKind{EventGroupSelected, EventPassComplete}, kinds)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "review-prompt", ReviewPrompt.String())
	assert.Equal(t, "word-skipped", EventWordSkipped.String())
	assert.True(t, ReviewPrompt.Done())
	assert.False(t, InProgress.Done())
}
