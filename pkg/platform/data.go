package platform

import (
	"net/url"
	"sync"
)

// DataPackageOperation is a set of drag-and-drop operations.
type DataPackageOperation int

const (
	OperationNone DataPackageOperation = 0
	OperationCopy DataPackageOperation = 1 << (iota - 1)
	OperationMove
	OperationLink
)

// DataPackage is the native payload of a drag. Handlers may stash their own
// values in Properties; they travel with the drag to the drop target.
type DataPackage struct {
	Properties map[string]any

	text    string
	hasText bool
	webLink *url.URL
	appLink *url.URL
	bitmap  *url.URL
	formats []string
}

// NewDataPackage returns an empty package.
func NewDataPackage() *DataPackage {
	return &DataPackage{Properties: make(map[string]any)}
}

// SetText exports plain text.
func (p *DataPackage) SetText(text string) {
	p.text = text
	p.hasText = true
	p.addFormat("text")
}

// Text returns the exported text.
func (p *DataPackage) Text() (string, bool) {
	return p.text, p.hasText
}

// SetWebLink exports a web URL.
func (p *DataPackage) SetWebLink(u *url.URL) {
	p.webLink = u
	p.addFormat("webLink")
}

// WebLink returns the exported web URL.
func (p *DataPackage) WebLink() *url.URL {
	return p.webLink
}

// SetApplicationLink exports an application URI.
func (p *DataPackage) SetApplicationLink(u *url.URL) {
	p.appLink = u
	p.addFormat("applicationLink")
}

// ApplicationLink returns the exported application URI.
func (p *DataPackage) ApplicationLink() *url.URL {
	return p.appLink
}

// SetBitmap exports an image by reference.
func (p *DataPackage) SetBitmap(u *url.URL) {
	p.bitmap = u
	p.addFormat("bitmap")
}

// Bitmap returns the exported image reference.
func (p *DataPackage) Bitmap() *url.URL {
	return p.bitmap
}

// Formats lists the exported formats in the order they were set.
func (p *DataPackage) Formats() []string {
	out := make([]string, len(p.formats))
	copy(out, p.formats)
	return out
}

func (p *DataPackage) addFormat(f string) {
	for _, existing := range p.formats {
		if existing == f {
			return
		}
	}
	p.formats = append(p.formats, f)
}

// encode returns the exported formats as a channel payload.
func (p *DataPackage) encode() map[string]any {
	out := make(map[string]any, 4)
	if p.hasText {
		out["text"] = p.text
	}
	if p.webLink != nil {
		out["webLink"] = p.webLink.String()
	}
	if p.appLink != nil {
		out["applicationLink"] = p.appLink.String()
	}
	if p.bitmap != nil {
		out["bitmap"] = p.bitmap.String()
	}
	return out
}

// dragSessions keeps the package of every drag started from Go so the drop
// target sees the same Properties.
var dragSessions = struct {
	mu       sync.Mutex
	packages map[int64]*DataPackage
}{packages: make(map[int64]*DataPackage)}

func dragPackage(dragID int64) *DataPackage {
	dragSessions.mu.Lock()
	defer dragSessions.mu.Unlock()
	if p, ok := dragSessions.packages[dragID]; ok {
		return p
	}
	p := NewDataPackage()
	if dragID != 0 {
		dragSessions.packages[dragID] = p
	}
	return p
}

func endDragSession(dragID int64) {
	dragSessions.mu.Lock()
	delete(dragSessions.packages, dragID)
	dragSessions.mu.Unlock()
}
