package e2ekit

import (
	"context"
	"fmt"
	"runtime/trace"
	"strings"
)

const (
	libraryPath = "/community-library"

	selCollectionTile       = `[data-e2e="collection-summary-tile"]`
	selCollectionTileTitle  = `[data-e2e="collection-summary-tile-title"]`
	selExplorationTile      = `[data-e2e="exp-summary-tile"]`
	selExplorationTileTitle = `[data-e2e="exp-summary-tile-title"]`
	selExplorationObjective = `[data-e2e="exp-summary-tile-objective"]`
	selExplorationRating    = `[data-e2e="exp-summary-tile-rating"]`
	selCreateActivity       = `[data-e2e="create-activity"]`
	selAddToPlaylist        = `[data-e2e="add-to-playlist-btn"]`
	selSearchInput          = `[data-e2e="search-input"]`
	selSearchButton         = `[data-e2e="search-button"]`
	selMainHeader           = `[data-e2e="library-main-header"]`
	selLanguageSelector     = `[data-e2e="search-bar-language-selector"]`
	selCategorySelector     = `[data-e2e="search-bar-category-selector"]`
)

// LibraryPage is the page object of the community library page.
type LibraryPage struct {
	p       pager
	baseURL string
	w       *WaitFor
	act     *Action
	lg      Logger

	languages  *MultiSelect
	categories *MultiSelect
}

func newLibraryPage(p pager, baseURL string, w *WaitFor, lg Logger) *LibraryPage {
	act := NewAction(w, lg)
	return &LibraryPage{
		p:          p,
		baseURL:    strings.TrimRight(baseURL, "/"),
		w:          w,
		act:        act,
		lg:         act.lg,
		languages:  newMultiSelect(p, act, "language selector", selLanguageSelector),
		categories: newMultiSelect(p, act, "category selector", selCategorySelector),
	}
}

// URL returns the library page address.
func (l *LibraryPage) URL() string {
	return l.baseURL + libraryPath
}

// Open navigates to the library page and waits for it to load.
func (l *LibraryPage) Open(ctx context.Context) error {
	ctx, task := trace.NewTask(ctx, "LibraryPage.Open")
	defer task.End()

	l.lg.Debug("opening library page", "url", l.URL())
	if err := l.p.Navigate(ctx, l.URL()); err != nil {
		return ErrBrowser{Err: err, FailedTo: "navigate to " + l.URL()}
	}
	return l.w.PageToFullyLoad(ctx, l.p)
}

// SubmitSearchQuery types query into the search bar.  The library page has
// two search inputs: the first one is visible only in desktop browsers, the
// second one only in mobile browsers.
func (l *LibraryPage) SubmitSearchQuery(ctx context.Context, mode DeviceMode, query string) error {
	if _, err := l.w.PresenceOf(ctx, l.p, selSearchInput, "search input to be present"); err != nil {
		return err
	}
	inputs, err := l.p.Elements(ctx, selSearchInput)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "find search inputs"}
	}
	idx := 0
	if mode == Mobile {
		idx = 1
	}
	if idx >= len(inputs) {
		return fmt.Errorf("%w: %s search input (have %d)", ErrNotFound, mode, len(inputs))
	}
	in := inputs[idx]
	if err := l.act.Clear(ctx, "search input", in); err != nil {
		return err
	}
	if err := l.act.SendKeys(ctx, "search input", in, query); err != nil {
		return err
	}

	buttons, err := l.p.Elements(ctx, selSearchButton)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "find search button"}
	}
	if len(buttons) == 0 {
		return nil
	}
	if err := l.act.Click(ctx, "search button", buttons[0]); err != nil {
		return err
	}
	return l.w.PageToFullyLoad(ctx, l.p)
}

func (l *LibraryPage) SelectLanguages(ctx context.Context, languages []string) error {
	return l.languages.SelectValues(ctx, languages)
}

func (l *LibraryPage) DeselectLanguages(ctx context.Context, languages []string) error {
	return l.languages.DeselectValues(ctx, languages)
}

func (l *LibraryPage) ExpectCurrentLanguageSelectionToBe(ctx context.Context, languages []string) error {
	return l.languages.ExpectCurrentSelectionToBe(ctx, languages)
}

func (l *LibraryPage) SelectCategories(ctx context.Context, categories []string) error {
	return l.categories.SelectValues(ctx, categories)
}

func (l *LibraryPage) DeselectCategories(ctx context.Context, categories []string) error {
	return l.categories.DeselectValues(ctx, categories)
}

func (l *LibraryPage) ExpectCurrentCategorySelectionToBe(ctx context.Context, categories []string) error {
	return l.categories.ExpectCurrentSelectionToBe(ctx, categories)
}

// ExpectMainHeaderTextToBe checks the library header text.
func (l *LibraryPage) ExpectMainHeaderTextToBe(ctx context.Context, text string) error {
	h, err := l.w.PresenceOf(ctx, l.p, selMainHeader, "main header to be present")
	if err != nil {
		return err
	}
	got, err := h.Text(ctx)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "read main header"}
	}
	if got != text {
		return ErrExpectation{What: "main header text", Want: text, Got: got}
	}
	return nil
}

// ExpectExplorationToBeVisible checks that at least one visible exploration
// tile is titled name.
func (l *LibraryPage) ExpectExplorationToBeVisible(ctx context.Context, name string) error {
	tiles, err := l.explorationTiles(ctx, name)
	if err != nil {
		return err
	}
	if len(tiles) == 0 {
		return ErrExpectation{What: fmt.Sprintf("number of visible explorations titled %q", name), Want: "non-zero", Got: 0}
	}
	return nil
}

// ExpectExplorationToBeHidden checks that no visible exploration tile is
// titled name.
func (l *LibraryPage) ExpectExplorationToBeHidden(ctx context.Context, name string) error {
	tiles, err := l.explorationTiles(ctx, name)
	if err != nil {
		return err
	}
	if len(tiles) != 0 {
		return ErrExpectation{What: fmt.Sprintf("number of visible explorations titled %q", name), Want: 0, Got: len(tiles)}
	}
	return nil
}

// PlayCollection opens the collection titled name.
func (l *LibraryPage) PlayCollection(ctx context.Context, name string) error {
	ctx, task := trace.NewTask(ctx, "LibraryPage.PlayCollection")
	defer task.End()
	return l.play(ctx, "collection", selCollectionTile, selCollectionTileTitle, name)
}

// PlayExploration opens the exploration titled name.
func (l *LibraryPage) PlayExploration(ctx context.Context, name string) error {
	ctx, task := trace.NewTask(ctx, "LibraryPage.PlayExploration")
	defer task.End()
	return l.play(ctx, "exploration", selExplorationTile, selExplorationTileTitle, name)
}

// play waits for the listing of kind to be populated, clicks the first card
// titled name and waits for the activity page to load.
func (l *LibraryPage) play(ctx context.Context, kind, tileSel, titleSel, name string) error {
	if err := l.w.PageToFullyLoad(ctx, l.p); err != nil {
		return err
	}
	if _, err := l.w.PresenceOf(ctx, l.p, tileSel, "library page to have a "+kind); err != nil {
		return err
	}
	var card elementer
	if err := l.w.Until(ctx, fmt.Sprintf("%s %q to be present", kind, name), func(ctx context.Context) (bool, error) {
		titles, err := l.p.Elements(ctx, titleSel)
		if err != nil {
			return false, err
		}
		matched, err := withText(ctx, titles, name)
		if err != nil || len(matched) == 0 {
			return false, err
		}
		card = matched[0]
		return true, nil
	}); err != nil {
		return err
	}
	if err := l.w.VisibilityOf(ctx, card, fmt.Sprintf("%s %q to be visible", kind, name)); err != nil {
		return err
	}
	if err := l.act.Click(ctx, kind+" card "+name, card); err != nil {
		return err
	}
	return l.w.PageToFullyLoad(ctx, l.p)
}

// GetExplorationObjective returns the objective of the first exploration
// titled name.
func (l *LibraryPage) GetExplorationObjective(ctx context.Context, name string) (string, error) {
	tile, err := l.firstExplorationTile(ctx, name)
	if err != nil {
		return "", err
	}
	obj, err := l.w.PresenceOf(ctx, tile, selExplorationObjective, "objective of "+name+" to be present")
	if err != nil {
		return "", err
	}
	txt, err := obj.Text(ctx)
	if err != nil {
		return "", ErrBrowser{Err: err, FailedTo: "read objective of " + name}
	}
	return txt, nil
}

// ExpectExplorationRatingToEqual checks the rating shown on the first
// exploration titled name.
func (l *LibraryPage) ExpectExplorationRatingToEqual(ctx context.Context, name, rating string) error {
	tile, err := l.firstExplorationTile(ctx, name)
	if err != nil {
		return err
	}
	if err := l.w.VisibilityOf(ctx, tile, "rating card of "+name+" to appear"); err != nil {
		return err
	}
	el, err := l.w.PresenceOf(ctx, tile, selExplorationRating, "rating of "+name+" to be present")
	if err != nil {
		return err
	}
	got, err := el.Text(ctx)
	if err != nil {
		return ErrBrowser{Err: err, FailedTo: "read rating of " + name}
	}
	got = strings.TrimSpace(got)
	if got != rating {
		return ErrExpectation{What: fmt.Sprintf("rating of %q", name), Want: rating, Got: got}
	}
	return nil
}

// ClickCreateActivity clicks the "Create" button and waits for the creation
// page to load.
func (l *LibraryPage) ClickCreateActivity(ctx context.Context) error {
	if err := l.clickOn(ctx, "create activity button", selCreateActivity); err != nil {
		return err
	}
	return l.w.PageToFullyLoad(ctx, l.p)
}

func (l *LibraryPage) ClickExplorationObjective(ctx context.Context) error {
	return l.clickOn(ctx, "exploration objective", selExplorationObjective)
}

// AddSelectedExplorationToPlaylist hovers over the first exploration card
// to reveal the playlist button and clicks it.
func (l *LibraryPage) AddSelectedExplorationToPlaylist(ctx context.Context) error {
	title, err := l.w.PresenceOf(ctx, l.p, selExplorationTileTitle, "exploration card to be present")
	if err != nil {
		return err
	}
	if err := title.Hover(ctx); err != nil {
		return ErrBrowser{Err: err, FailedTo: "hover over exploration card"}
	}
	return l.clickOn(ctx, "add to playlist button", selAddToPlaylist)
}

// FindExploration searches the library for title.
func (l *LibraryPage) FindExploration(ctx context.Context, mode DeviceMode, title string) error {
	return l.search(ctx, mode, title)
}

// FindCollection searches the library for title.  Collections are found
// through the same search bar as explorations.
func (l *LibraryPage) FindCollection(ctx context.Context, mode DeviceMode, title string) error {
	return l.search(ctx, mode, title)
}

// search waits for the page to settle before submitting query.
func (l *LibraryPage) search(ctx context.Context, mode DeviceMode, query string) error {
	if err := l.w.PageToFullyLoad(ctx, l.p); err != nil {
		return err
	}
	return l.SubmitSearchQuery(ctx, mode, query)
}

func (l *LibraryPage) clickOn(ctx context.Context, name, selector string) error {
	el, err := l.w.PresenceOf(ctx, l.p, selector, name+" to be present")
	if err != nil {
		return err
	}
	return l.act.Click(ctx, name, el)
}

// explorationTiles returns visible exploration tiles titled name.  Tiles may
// be hidden on small screens, those are skipped.
func (l *LibraryPage) explorationTiles(ctx context.Context, name string) ([]elementer, error) {
	tiles, err := l.p.Elements(ctx, selExplorationTile)
	if err != nil {
		return nil, ErrBrowser{Err: err, FailedTo: "find exploration tiles"}
	}
	var out []elementer
	for _, tile := range tiles {
		titles, err := tile.Elements(ctx, selExplorationTileTitle)
		if err != nil {
			return nil, ErrBrowser{Err: err, FailedTo: "find exploration tile title"}
		}
		if len(titles) == 0 {
			continue
		}
		title, err := titles[0].Text(ctx)
		if err != nil {
			return nil, ErrBrowser{Err: err, FailedTo: "read exploration tile title"}
		}
		if title != name {
			continue
		}
		visible, err := tile.Visible(ctx)
		if err != nil {
			return nil, ErrBrowser{Err: err, FailedTo: "check exploration tile visibility"}
		}
		if visible {
			out = append(out, tile)
		}
	}
	return out, nil
}

func (l *LibraryPage) firstExplorationTile(ctx context.Context, name string) (elementer, error) {
	tiles, err := l.explorationTiles(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: exploration %q", ErrNotFound, name)
	}
	return tiles[0], nil
}

// withText returns the elements whose text is exactly text.
func withText(ctx context.Context, els []elementer, text string) ([]elementer, error) {
	var out []elementer
	for _, el := range els {
		t, err := el.Text(ctx)
		if err != nil {
			return nil, err
		}
		if t == text {
			out = append(out, el)
		}
	}
	return out, nil
}
