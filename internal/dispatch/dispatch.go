// Package dispatch writes a committed item to the system clipboard and
// dismisses the overlay. The overlay is hidden even when the write fails:
// the user's intent was to act and dismiss, and an overlay stuck open on
// failure is worse than a lost copy.
package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"log"

	// Screenshot blobs are stored as png or jpeg
	_ "image/jpeg"
	_ "image/png"

	"quickboard/internal/domain"
	"quickboard/internal/eventbus"
	"quickboard/internal/platform"
)

// WriteError reports a failed clipboard write
type WriteError struct {
	ItemID int64
	Cause  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing item %d to clipboard: %v", e.ItemID, e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }

// ImageSource resolves a screenshot item to its stored image bytes
type ImageSource interface {
	ItemImage(ctx context.Context, id int64) ([]byte, error)
}

// Dispatcher commits items to the clipboard
type Dispatcher struct {
	clipboard platform.Clipboard
	images    ImageSource
	bus       eventbus.EventBus
	hideFn    func()
}

// NewDispatcher creates a dispatcher. hideFn dismisses the overlay and runs
// after every commit, successful or not.
func NewDispatcher(clipboard platform.Clipboard, images ImageSource, bus eventbus.EventBus, hideFn func()) *Dispatcher {
	return &Dispatcher{
		clipboard: clipboard,
		images:    images,
		bus:       bus,
		hideFn:    hideFn,
	}
}

// Commit writes the item's payload to the clipboard: plain text for
// clipboard items, decoded RGBA pixels for screenshots.
func (d *Dispatcher) Commit(ctx context.Context, item domain.Item) error {
	var err error
	switch item.Source {
	case domain.SourceScreenshot:
		err = d.copyImage(ctx, item)
	default:
		err = d.clipboard.WriteText(item.Text)
	}

	if err != nil {
		werr := &WriteError{ItemID: item.ID, Cause: err}
		log.Printf("dispatch: %v", werr)
		d.bus.Publish(domain.ErrorEvent{Message: "clipboard write failed", Err: werr})
		err = werr
	} else {
		log.Printf("dispatch: copied item %d (%s)", item.ID, item.Source)
		d.bus.Publish(domain.ItemCopiedEvent{Item: item})
	}

	if d.hideFn != nil {
		d.hideFn()
	}
	return err
}

func (d *Dispatcher) copyImage(ctx context.Context, item domain.Item) error {
	data, err := d.images.ItemImage(ctx, item.ID)
	if err != nil {
		return err
	}

	rgba, width, height, err := decodeRGBA(data)
	if err != nil {
		return err
	}
	return d.clipboard.WriteImage(rgba, width, height)
}

// decodeRGBA decodes an encoded image into raw RGBA bytes plus dimensions
func decodeRGBA(data []byte) ([]byte, int, int, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba.Pix, bounds.Dx(), bounds.Dy(), nil
}
