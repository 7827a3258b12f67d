package content

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gsschool/backend/internal/store"
	"github.com/gsschool/backend/pkg/logger"
)

// Page keys the generic content endpoints will serve. Anything else is 404.
var pageKeys = []string{
	"home", "about", "faculty", "facilities", "achievements", "testimonials",
	"admissions", "activities", "contact", "courses", "footer",
}

var allowedPages = func() map[string]bool {
	m := make(map[string]bool, len(pageKeys))
	for _, k := range pageKeys {
		m[k] = true
	}
	return m
}()

// PageKeys returns the fixed page allow-list in declaration order.
func PageKeys() []string { return pageKeys }

// PageAllowed reports whether key is a servable page document.
func PageAllowed(key string) bool { return allowedPages[strings.ToLower(key)] }

// MediaRemover deletes a stored upload by its public path. Paths outside the
// managed upload prefix must be ignored, not treated as errors.
type MediaRemover interface {
	Remove(publicPath string) error
}

// Service applies the domain rules (allow-list, expiry filtering, ordering,
// id assignment) on top of a document store.
type Service struct {
	store store.Store
	media MediaRemover
}

func NewService(st store.Store, media MediaRemover) *Service {
	return &Service{store: st, media: media}
}

// GetPage returns the stored page document. Unknown keys and missing
// documents both surface as store.ErrNotFound.
func (s *Service) GetPage(ctx context.Context, key string) (json.RawMessage, error) {
	key = strings.ToLower(key)
	if !allowedPages[key] {
		return nil, store.ErrNotFound
	}
	return s.store.Read(ctx, key)
}

// PutPage overwrites the page document unconditionally. The body is accepted
// as-is; page shapes are free-form.
func (s *Service) PutPage(ctx context.Context, key string, body json.RawMessage) error {
	key = strings.ToLower(key)
	if !allowedPages[key] {
		return store.ErrNotFound
	}
	return s.store.Write(ctx, key, body)
}

// ListNotices returns the active notices, newest first. Expired notices are
// filtered at read time and stay on disk.
func (s *Service) ListNotices(ctx context.Context, now time.Time) ([]Notice, error) {
	all, err := s.readNotices(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]Notice, 0, len(all))
	for _, n := range all {
		if !n.Expired(now) {
			active = append(active, n)
		}
	}
	return active, nil
}

// CreateNotice assigns an id and creation time, prepends the notice and
// persists the collection.
func (s *Service) CreateNotice(ctx context.Context, in NoticeInput) (Notice, error) {
	all, err := s.readNotices(ctx)
	if err != nil {
		return Notice{}, err
	}
	n := Notice{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Content:   in.Content,
		Level:     in.Level,
		Image:     in.Image,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		ExpiresAt: in.ExpiresAt,
	}
	if n.Title == "" {
		n.Title = "Notice"
	}
	if n.Level == "" {
		n.Level = "info"
	}
	all = append([]Notice{n}, all...)
	if err := s.writeJSON(ctx, "notices", all); err != nil {
		return Notice{}, err
	}
	return n, nil
}

// DeleteNotice removes the notice with the given id. Deleting an unknown id
// is not an error.
func (s *Service) DeleteNotice(ctx context.Context, id string) error {
	all, err := s.readNotices(ctx)
	if err != nil {
		return err
	}
	next := all[:0]
	for _, n := range all {
		if n.ID != id {
			next = append(next, n)
		}
	}
	return s.writeJSON(ctx, "notices", next)
}

// ListGallery returns all gallery items in stored (newest-first) order.
func (s *Service) ListGallery(ctx context.Context) ([]GalleryItem, error) {
	return s.readGallery(ctx)
}

// AddGalleryItem assigns an id, prepends the item and persists the
// collection.
func (s *Service) AddGalleryItem(ctx context.Context, item GalleryItem) (GalleryItem, error) {
	all, err := s.readGallery(ctx)
	if err != nil {
		return GalleryItem{}, err
	}
	item.ID = uuid.NewString()
	all = append([]GalleryItem{item}, all...)
	if err := s.writeJSON(ctx, "gallery", all); err != nil {
		return GalleryItem{}, err
	}
	return item, nil
}

// DeleteGalleryItem removes the item and, when its image lives under the
// managed upload area, the backing file. External or absent images are left
// alone.
func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	all, err := s.readGallery(ctx)
	if err != nil {
		return err
	}
	var removed GalleryItem
	var found bool
	next := make([]GalleryItem, 0, len(all))
	for _, it := range all {
		if it.ID == id {
			removed = it
			found = true
			continue
		}
		next = append(next, it)
	}
	if err := s.writeJSON(ctx, "gallery", next); err != nil {
		return err
	}
	if found && removed.Image != "" && s.media != nil {
		if err := s.media.Remove(removed.Image); err != nil {
			// the collection entry is already gone; an orphaned file is
			// not worth failing the request over
			logger.Warnf("gallery: could not remove file for %s: %v", id, err)
		}
	}
	return nil
}

func (s *Service) readNotices(ctx context.Context) ([]Notice, error) {
	raw, err := s.store.Read(ctx, "notices")
	if err != nil {
		return nil, err
	}
	var all []Notice
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Service) readGallery(ctx context.Context) ([]GalleryItem, error) {
	raw, err := s.store.Read(ctx, "gallery")
	if err != nil {
		return nil, err
	}
	var all []GalleryItem
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (s *Service) writeJSON(ctx context.Context, name string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Write(ctx, name, b)
}
