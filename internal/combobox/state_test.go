package combobox

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combobox/internal/domain"
	"combobox/internal/eventbus"
)

var (
	react  = domain.Item{Name: "React", Value: "react", Keywords: []string{"web", "frontend"}}
	redis  = domain.Item{Name: "Redis", Value: "redis", Keywords: []string{"db", "cache"}}
	docker = domain.Item{Name: "Docker", Value: "docker", Keywords: []string{"ops", "containers"}}
)

// recordingBus captures published events synchronously
type recordingBus struct {
	events []eventbus.DomainEvent
}

func (r *recordingBus) Publish(e eventbus.DomainEvent) { r.events = append(r.events, e) }
func (r *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (r *recordingBus) selectionEvents() []eventbus.SelectionChangedEvent {
	var out []eventbus.SelectionChangedEvent
	for _, e := range r.events {
		if sc, ok := e.(eventbus.SelectionChangedEvent); ok {
			out = append(out, sc)
		}
	}
	return out
}

func newState(items ...domain.Item) *State {
	return New(items, WithID("test"))
}

func TestNew_InitialState(t *testing.T) {
	s := New([]domain.Item{react, redis})

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Highlighted())
	assert.False(t, s.IsOpen())
	assert.False(t, s.Loading())
	assert.Empty(t, s.Selected())
	assert.Equal(t, []domain.Item{react, redis}, s.Items())
}

func TestNew_CopiesItems(t *testing.T) {
	items := []domain.Item{react, redis}
	s := New(items)
	items[0] = docker
	assert.Equal(t, react, s.Items()[0])
}

func TestSetQuery(t *testing.T) {
	var hooked []string
	s := New([]domain.Item{react, redis, docker}, WithQueryHook(func(q string) {
		hooked = append(hooked, q)
	}))
	s.HandleKey(KeyArrowDown)
	require.Equal(t, 1, s.Highlighted())

	s.SetQuery("re")

	assert.Equal(t, "re", s.Query())
	assert.True(t, s.IsOpen())
	assert.Equal(t, 0, s.Highlighted())
	assert.Equal(t, []string{"re"}, hooked)
}

func TestSetQuery_DefaultHookIsNoop(t *testing.T) {
	s := newState(react)
	assert.NotPanics(t, func() { s.SetQuery("x") })
}

func TestSetQuery_PublishesQueryChanged(t *testing.T) {
	bus := &recordingBus{}
	s := New([]domain.Item{react}, WithBus(bus), WithID("w1"))
	s.SetQuery("rea")

	require.Len(t, bus.events, 1)
	assert.Equal(t, eventbus.QueryChangedEvent{WidgetID: "w1", Query: "rea"}, bus.events[0])
}

func TestFocusAndClose(t *testing.T) {
	s := newState(react)
	s.Focus()
	assert.True(t, s.IsOpen())
	s.CloseDropdown()
	assert.False(t, s.IsOpen())
}

func TestBlur_NoopByDefault(t *testing.T) {
	s := newState(react)
	s.Focus()
	s.Blur()
	assert.True(t, s.IsOpen())
}

func TestBlur_CloseOnBlurHook(t *testing.T) {
	s := New([]domain.Item{react}, WithBlurHook(CloseOnBlur))
	s.Focus()
	s.Blur()
	assert.False(t, s.IsOpen())
}

func TestSelectItem(t *testing.T) {
	s := newState(react, redis)
	s.SetQuery("red")
	s.HandleKey(KeyArrowDown) // single match, wraps back to 0

	s.SelectItem(redis)

	assert.Equal(t, []domain.Item{redis}, s.Selected())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Highlighted())
}

func TestSelectItem_Idempotent(t *testing.T) {
	bus := &recordingBus{}
	s := New([]domain.Item{react, redis}, WithBus(bus))

	s.SelectItem(react)
	once := s.Selected()
	s.SetQuery("r")
	s.SelectItem(react)

	assert.Equal(t, once, s.Selected())
	assert.Equal(t, "", s.Query(), "query cleared even when already selected")
	assert.Len(t, bus.selectionEvents(), 1, "no event for a repeated selection")
}

func TestSelectItem_UniqueByValue(t *testing.T) {
	s := newState(react)
	renamed := domain.Item{Name: "React 19", Value: "react"}
	s.SelectItem(react)
	s.SelectItem(renamed)

	require.Len(t, s.Selected(), 1)
	assert.Equal(t, "React", s.Selected()[0].Name)
}

func TestRemoveItem(t *testing.T) {
	bus := &recordingBus{}
	s := New([]domain.Item{react, redis, docker}, WithBus(bus))
	s.SelectItem(react)
	s.SelectItem(redis)
	s.SelectItem(docker)

	s.RemoveItem(domain.Item{Value: "redis"})

	assert.Equal(t, []string{"react", "docker"}, s.SelectedValues())
	events := bus.selectionEvents()
	require.Len(t, events, 4)
	assert.Equal(t, []domain.Item{redis}, events[3].Removed)
	assert.Equal(t, []domain.Item{react, docker}, events[3].Selected)
}

func TestRemoveItem_NotPresent(t *testing.T) {
	s := newState(react, redis)
	s.SelectItem(react)
	s.RemoveItem(redis)
	assert.Equal(t, []string{"react"}, s.SelectedValues())
}

func TestHandleKey_ArrowWrap(t *testing.T) {
	s := newState(react, redis, docker)
	require.Len(t, s.Filtered(), 3)

	s.HandleKey(KeyArrowDown)
	s.HandleKey(KeyArrowDown)
	assert.Equal(t, 2, s.Highlighted())

	s.HandleKey(KeyArrowDown)
	assert.Equal(t, 0, s.Highlighted(), "wraps to the top")

	s.HandleKey(KeyArrowUp)
	assert.Equal(t, 2, s.Highlighted(), "wraps to the bottom")
}

func TestHandleKey_ArrowsOnEmptyList(t *testing.T) {
	s := newState(react)
	s.SetQuery("zzz")
	require.Empty(t, s.Filtered())

	s.HandleKey(KeyArrowDown)
	assert.Equal(t, 0, s.Highlighted())
	s.HandleKey(KeyArrowUp)
	assert.Equal(t, 0, s.Highlighted())
}

func TestHandleKey_ArrowDownThenUpIsIdentity(t *testing.T) {
	items := []domain.Item{react, redis, docker}
	for n := 1; n <= len(items); n++ {
		for start := 0; start < n; start++ {
			s := newState(items[:n]...)
			for i := 0; i < start; i++ {
				s.HandleKey(KeyArrowDown)
			}
			require.Equal(t, start, s.Highlighted())

			s.HandleKey(KeyArrowDown)
			s.HandleKey(KeyArrowUp)
			assert.Equal(t, start, s.Highlighted(), "n=%d start=%d", n, start)
		}
	}
}

func TestHandleKey_EnterSelectsHighlighted(t *testing.T) {
	s := newState(react, redis, docker)
	s.HandleKey(KeyArrowDown)
	s.HandleKey(KeyEnter)
	assert.Equal(t, []string{"redis"}, s.SelectedValues())
}

func TestHandleKey_EnterWithEmptyList(t *testing.T) {
	s := newState(react, redis)
	s.SetQuery("nothing matches")
	before := s.Snapshot()

	assert.NotPanics(t, func() { s.HandleKey(KeyEnter) })
	assert.Equal(t, before, s.Snapshot())
}

func TestHandleKey_EnterWithStaleIndex(t *testing.T) {
	s := newState(react, redis, docker)
	s.HandleKey(KeyArrowDown)
	s.HandleKey(KeyArrowDown)
	require.Equal(t, 2, s.Highlighted())

	// The pool shrinks underneath the highlight
	s.items = []domain.Item{react}
	require.Len(t, s.Filtered(), 1)

	assert.NotPanics(t, func() { s.HandleKey(KeyEnter) })
	assert.Empty(t, s.Selected())
}

func TestHandleKey_Escape(t *testing.T) {
	s := newState(react, redis)
	s.SetQuery("re")
	s.HandleKey(KeyArrowDown)

	s.HandleKey(KeyEscape)

	assert.False(t, s.IsOpen())
	assert.Equal(t, "", s.Query())
	assert.Equal(t, 0, s.Highlighted())
}

func TestHandleKey_BackspacePopsLastSelected(t *testing.T) {
	s := newState(react, redis)
	s.SelectItem(react)
	s.SelectItem(redis)

	s.HandleKey(KeyBackspace)

	assert.Equal(t, []domain.Item{react}, s.Selected())
}

func TestHandleKey_BackspaceWithQueryKeepsSelection(t *testing.T) {
	s := newState(react, redis)
	s.SelectItem(react)
	s.SetQuery("r")

	s.HandleKey(KeyBackspace)

	assert.Equal(t, []string{"react"}, s.SelectedValues())
	assert.Equal(t, "r", s.Query(), "text editing is the field's job")
}

func TestHandleKey_BackspaceWithNothingSelected(t *testing.T) {
	s := newState(react)
	assert.NotPanics(t, func() { s.HandleKey(KeyBackspace) })
	assert.Empty(t, s.Selected())
}

func TestHandleKey_UnknownKey(t *testing.T) {
	s := newState(react, redis)
	s.SetQuery("re")
	before := s.Snapshot()
	s.HandleKey(Key("a"))
	s.HandleKey(Key("Tab"))
	assert.Equal(t, before, s.Snapshot())
}

func TestSetItems_KeepsSelection(t *testing.T) {
	s := newState(react, redis)
	s.SelectItem(react)
	s.HandleKey(KeyArrowDown)

	s.SetItems([]domain.Item{docker})

	assert.Equal(t, []string{"react"}, s.SelectedValues())
	assert.Equal(t, []domain.Item{docker}, s.Items())
	assert.Equal(t, 0, s.Highlighted())
}

func TestApplyResult_LatestRequestWins(t *testing.T) {
	bus := &recordingBus{}
	s := New(nil, WithBus(bus))

	first := s.BeginSearch()
	second := s.BeginSearch()
	assert.True(t, s.Loading())

	assert.True(t, s.ApplyResult(second, []domain.Item{redis}))
	assert.False(t, s.Loading())

	assert.False(t, s.ApplyResult(first, []domain.Item{react}), "late response is dropped")
	assert.Equal(t, []domain.Item{redis}, s.Items())

	var stale []eventbus.StaleResultEvent
	for _, e := range bus.events {
		if ev, ok := e.(eventbus.StaleResultEvent); ok {
			stale = append(stale, ev)
		}
	}
	require.Len(t, stale, 1)
	assert.Equal(t, first, stale[0].Sequence)
	assert.Equal(t, second, stale[0].Latest)
}

func TestApplyResult_StaleKeepsLoading(t *testing.T) {
	s := newState()
	old := s.BeginSearch()
	s.BeginSearch()
	s.ApplyResult(old, []domain.Item{react})
	assert.True(t, s.Loading(), "a newer search is still pending")
}

func TestHighlightedItem(t *testing.T) {
	s := newState(react, redis)
	item, ok := s.HighlightedItem()
	require.True(t, ok)
	assert.Equal(t, react, item)

	s.SetQuery("nope")
	_, ok = s.HighlightedItem()
	assert.False(t, ok)
}

func TestFiltered_ReturnsCopy(t *testing.T) {
	s := newState(react, redis)
	f := s.Filtered()
	f[0] = docker
	assert.Equal(t, react, s.Filtered()[0])
}

func TestScenario_FilterByNameAndKeyword(t *testing.T) {
	s := newState(react, redis)

	s.SetQuery("re")
	assert.Equal(t, []domain.Item{react, redis}, s.Filtered())

	s.SetQuery("cache")
	assert.Equal(t, []domain.Item{redis}, s.Filtered())
}

// Randomized sequences of operations must never break the invariants
func TestInvariants_RandomOperations(t *testing.T) {
	pool := []domain.Item{
		react, redis, docker,
		{Name: "Vue.js", Value: "vue", Keywords: []string{"web", "frontend", "js"}},
		{Name: "PostgreSQL", Value: "postgres", Keywords: []string{"db", "sql"}},
	}
	queries := []string{"", "r", "re", "RE", " db ", "js", "zzz", "o", "web"}
	keys := []Key{KeyArrowDown, KeyArrowUp, KeyEnter, KeyEscape, KeyBackspace, Key("x")}

	rng := rand.New(rand.NewSource(42))
	s := newState(pool...)

	for step := 0; step < 2000; step++ {
		switch rng.Intn(6) {
		case 0:
			s.SetQuery(queries[rng.Intn(len(queries))])
		case 1:
			s.HandleKey(keys[rng.Intn(len(keys))])
		case 2:
			s.SelectItem(pool[rng.Intn(len(pool))])
		case 3:
			s.RemoveItem(pool[rng.Intn(len(pool))])
		case 4:
			s.SetItems(pool[:1+rng.Intn(len(pool))])
		case 5:
			s.Focus()
		}

		seen := map[string]bool{}
		for _, item := range s.Selected() {
			require.False(t, seen[item.Value], "duplicate value %q at step %d", item.Value, step)
			seen[item.Value] = true
		}

		n := len(s.Filtered())
		upper := n
		if upper < 1 {
			upper = 1
		}
		require.GreaterOrEqual(t, s.Highlighted(), 0, "step %d", step)
		require.Less(t, s.Highlighted(), upper, "step %d", step)
	}
}

func TestEndSearch(t *testing.T) {
	s := newState(react)
	old := s.BeginSearch()
	latest := s.BeginSearch()

	assert.False(t, s.EndSearch(old))
	assert.True(t, s.Loading())

	assert.True(t, s.EndSearch(latest))
	assert.False(t, s.Loading())
	assert.Equal(t, []domain.Item{react}, s.Items(), "items untouched")
}
