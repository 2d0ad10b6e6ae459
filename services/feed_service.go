package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/nate-han123/Mind-Scroll/models"
	"github.com/nate-han123/Mind-Scroll/pkg/logger"
)

type FeedPhase string

const (
	PhaseSelectingInterests FeedPhase = "selecting_interests"
	PhaseSelectingDuration  FeedPhase = "selecting_duration"
	PhaseBrowsing           FeedPhase = "browsing"
)

const (
	MinInterests = 3
	MaxInterests = 4
)

// Durations are the accepted video-length buckets.
var Durations = []string{"short", "medium", "long", "any"}

func ValidDuration(d string) bool {
	for _, v := range Durations {
		if v == d {
			return true
		}
	}
	return false
}

var (
	ErrUnknownInterest = errors.New("unknown interest tag")
	ErrTooFewInterests = fmt.Errorf("select at least %d interests to continue", MinInterests)
	ErrUnknownDuration = errors.New("unknown duration preference")
	ErrNothingToExtend = errors.New("no feed loaded yet")
)

// BrowseResult is one rendering of the feed. Fallback content masks API
// failures; QuotaExceeded distinguishes the quota banner from the generic
// error banner.
type BrowseResult struct {
	Items         []models.VideoItem `json:"items"`
	QuotaExceeded bool               `json:"quota_exceeded"`
	Fallback      bool               `json:"fallback"`
	Error         string             `json:"error,omitempty"`
}

// FeedService drives the content feed state machine:
// SelectingInterests -> SelectingDuration -> Browsing.
//
// The working tag selection and the fetched video list are view state,
// held in memory for the process lifetime only. Confirmed interests, the
// duration preference and the like/save marks are written through to the
// session store.
type FeedService struct {
	api *RecommendAPI
	log *logger.Logger

	mu         sync.Mutex
	selections map[string][]string
	browsing   map[string][]models.VideoItem
}

func NewFeedService(api *RecommendAPI, log *logger.Logger) *FeedService {
	return &FeedService{
		api:        api,
		log:        log,
		selections: make(map[string][]string),
		browsing:   make(map[string][]models.VideoItem),
	}
}

// Phase derives the current state from what has been persisted.
func (f *FeedService) Phase(sess Session) FeedPhase {
	if len(f.confirmedInterests(sess)) == 0 {
		return PhaseSelectingInterests
	}
	if _, ok := sess.Duration(); !ok {
		return PhaseSelectingDuration
	}
	return PhaseBrowsing
}

// confirmedInterests prefers the profile's interest tags, then the
// session's saved selection. The selector screen uses the same precedence
// to decide whether to show itself at all.
func (f *FeedService) confirmedInterests(sess Session) []string {
	if u, ok := sess.User(); ok {
		if p := u.EffectiveProfile(); len(p.IntellectualInterests) > 0 {
			return p.IntellectualInterests
		}
	}
	return sess.Interests()
}

// Selection returns the working tag selection, seeding it from the
// confirmed interests on first access.
func (f *FeedService) Selection(sess Session) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sel, ok := f.selections[sess.ID]; ok {
		return append([]string(nil), sel...)
	}
	seed := f.confirmedInterests(sess)
	f.selections[sess.ID] = append([]string(nil), seed...)
	return append([]string(nil), seed...)
}

// ToggleInterest flips one tag in the working selection. Adding beyond
// MaxInterests is a no-op; removing is always allowed.
func (f *FeedService) ToggleInterest(sess Session, tag string) ([]string, error) {
	if !ValidInterest(tag) {
		return nil, ErrUnknownInterest
	}
	sel := f.Selection(sess)

	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range sel {
		if t == tag {
			sel = append(sel[:i], sel[i+1:]...)
			f.selections[sess.ID] = sel
			return append([]string(nil), sel...), nil
		}
	}
	if len(sel) >= MaxInterests {
		return append([]string(nil), sel...), nil
	}
	sel = append(sel, tag)
	f.selections[sess.ID] = sel
	return append([]string(nil), sel...), nil
}

// ConfirmInterests persists the working selection and advances the state
// machine to duration selection.
func (f *FeedService) ConfirmInterests(sess Session) ([]string, error) {
	sel := f.Selection(sess)
	if len(sel) < MinInterests {
		return nil, ErrTooFewInterests
	}
	if err := sess.SetInterests(sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// ApplyInterests replaces the working selection with the given tags and
// confirms it. Tags go through the selection rule one by one, so adding
// beyond MaxInterests is a no-op (the first four stick), and the result
// still has to reach MinInterests before it persists.
func (f *FeedService) ApplyInterests(sess Session, tags []string) ([]string, error) {
	f.mu.Lock()
	f.selections[sess.ID] = []string{}
	f.mu.Unlock()

	for _, tag := range tags {
		if _, err := f.ToggleInterest(sess, tag); err != nil {
			return nil, err
		}
	}
	return f.ConfirmInterests(sess)
}

// SelectDuration persists the duration preference; on cancel nothing is
// written and prior selections survive.
func (f *FeedService) SelectDuration(sess Session, d string) error {
	if !ValidDuration(d) {
		return ErrUnknownDuration
	}
	return sess.SetDuration(d)
}

// ResetInterests returns the session to interest selection.
func (f *FeedService) ResetInterests(sess Session) error {
	f.mu.Lock()
	delete(f.selections, sess.ID)
	delete(f.browsing, sess.ID)
	f.mu.Unlock()
	return sess.store.Remove(sess.ID, models.KeyInterests)
}

// Browse fetches a fresh feed and replaces the session's rendered list.
// API failure falls back to the bundled catalog filtered by the selected
// interests, with the error surfaced alongside the items.
func (f *FeedService) Browse(sess Session) BrowseResult {
	interests := f.confirmedInterests(sess)
	duration, _ := sess.Duration()

	rr, err := f.api.Fetch(interests, duration)
	if err != nil {
		f.log.Warnw("recommendations fetch failed, serving fallback catalog",
			"session", sess.ID, "error", err)
		items := FilterByInterests(FallbackContent, interests)
		f.setBrowsing(sess.ID, items)
		return BrowseResult{Items: items, Fallback: true, Error: err.Error()}
	}

	f.setBrowsing(sess.ID, rr.Data)
	return BrowseResult{Items: rr.Data, QuotaExceeded: rr.QuotaExceeded}
}

// DiscoverMore appends the next page to the rendered list. Additive only:
// the existing list is never replaced. Items are not deduplicated against
// what is already rendered; the endpoint does not promise disjoint pages.
func (f *FeedService) DiscoverMore(sess Session) BrowseResult {
	interests := f.confirmedInterests(sess)

	f.mu.Lock()
	current, loaded := f.browsing[sess.ID]
	f.mu.Unlock()
	if !loaded {
		return BrowseResult{Error: ErrNothingToExtend.Error()}
	}

	rr, err := f.api.Fetch(interests, "")
	if err != nil {
		f.log.Warnw("discover-more fetch failed", "session", sess.ID, "error", err)
		return BrowseResult{Items: current, Error: err.Error()}
	}

	merged := append(current, rr.Data...)
	f.setBrowsing(sess.ID, merged)
	return BrowseResult{Items: merged, QuotaExceeded: rr.QuotaExceeded}
}

// Current returns the session's rendered list without refetching. Both
// render modes (grid and vertical) read the same list.
func (f *FeedService) Current(sess Session) []models.VideoItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.VideoItem(nil), f.browsing[sess.ID]...)
}

// Liked filters the rendered list by the session's like marks.
func (f *FeedService) Liked(sess Session) []models.VideoItem {
	return filterByMarks(f.Current(sess), sess.LikedReels())
}

// Saved filters the rendered list by the session's save marks.
func (f *FeedService) Saved(sess Session) []models.VideoItem {
	return filterByMarks(f.Current(sess), sess.SavedReels())
}

func filterByMarks(items []models.VideoItem, marks map[string]bool) []models.VideoItem {
	out := make([]models.VideoItem, 0, len(items))
	for _, it := range items {
		if marks[string(it.ID)] || (it.VideoID != "" && marks[it.VideoID]) {
			out = append(out, it)
		}
	}
	return out
}

func (f *FeedService) setBrowsing(sid string, items []models.VideoItem) {
	f.mu.Lock()
	f.browsing[sid] = items
	f.mu.Unlock()
}
