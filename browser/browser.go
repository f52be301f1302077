// Package browser aggregates the set of open pages and tracks which one
// is active, the multi-tab bookkeeping layer above Page (spec §9
// supplemented feature).
package browser

import (
	"github.com/google/uuid"

	"github.com/pinhole-web/pinhole/config"
	"github.com/pinhole-web/pinhole/errors"
	"github.com/pinhole-web/pinhole/httpmodel"
	"github.com/pinhole-web/pinhole/page"
)

// Browser owns a collection of pages keyed by a generated ID and a
// cursor naming the active one. New starts with a single empty page,
// mirroring the original's single-tab-on-launch behavior.
type Browser struct {
	constants config.Constants
	activeID  uuid.UUID
	order     []uuid.UUID
	pages     map[uuid.UUID]*page.Page
}

// New creates a Browser with one empty page, already active.
func New(constants config.Constants) *Browser {
	b := &Browser{
		constants: constants,
		pages:     make(map[uuid.UUID]*page.Page),
	}
	id := b.newPage()
	b.activeID = id
	return b
}

func (b *Browser) newPage() uuid.UUID {
	id := uuid.New()
	b.pages[id] = page.New(b.constants)
	b.order = append(b.order, id)
	return id
}

// OpenPage creates a new page, appends it after the existing ones, and
// returns its ID without changing which page is active.
func (b *Browser) OpenPage() uuid.UUID {
	return b.newPage()
}

// CurrentPage returns the active page.
func (b *Browser) CurrentPage() *page.Page {
	return b.pages[b.activeID]
}

// CurrentPageID returns the active page's ID.
func (b *Browser) CurrentPageID() uuid.UUID {
	return b.activeID
}

// PageIDs returns every open page's ID in the order they were opened.
func (b *Browser) PageIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(b.order))
	copy(out, b.order)
	return out
}

// SwitchTo makes the page named id active. It fails with
// errors.UnexpectedInput if no such page is open.
func (b *Browser) SwitchTo(id uuid.UUID) error {
	if _, ok := b.pages[id]; !ok {
		return errors.New("browser.SwitchTo", errors.UnexpectedInput)
	}
	b.activeID = id
	return nil
}

// ClosePage closes the page named id. Closing the active page makes the
// next one in open order active, or the previous one if none follows it.
// ClosePage refuses to close the last remaining page.
func (b *Browser) ClosePage(id uuid.UUID) error {
	if _, ok := b.pages[id]; !ok {
		return errors.New("browser.ClosePage", errors.UnexpectedInput)
	}
	if len(b.order) == 1 {
		return errors.New("browser.ClosePage", errors.InvalidUI)
	}

	idx := -1
	for i, pid := range b.order {
		if pid == id {
			idx = i
			break
		}
	}

	b.order = append(b.order[:idx], b.order[idx+1:]...)
	delete(b.pages, id)

	if b.activeID == id {
		next := idx
		if next >= len(b.order) {
			next = len(b.order) - 1
		}
		b.activeID = b.order[next]
	}
	return nil
}

// NavigateActive drives the active page's ReceiveResponse, the browser-
// level entry point a shell's navigation bar calls into.
func (b *Browser) NavigateActive(response *httpmodel.Response) error {
	return b.CurrentPage().ReceiveResponse(response)
}
