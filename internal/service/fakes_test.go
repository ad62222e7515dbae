package service

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Jayantx07/Education-Point/internal/models"
)

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]*models.User
	updates   int
	updateErr error
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return &pq.Error{Code: "23505"}
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now().UTC()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return sql.ErrNoRows
	}
	r.updates++
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.users, id)
	return nil
}

// fakeCatalog backs both the course and testimonial fakes so cross-resource effects are observable.
type fakeCatalog struct {
	mu           sync.Mutex
	courses      []models.Course
	testimonials []models.Testimonial
	listCalls    int
}

type fakeCourseRepo struct{ *fakeCatalog }

func (r fakeCourseRepo) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	out := make([]models.Course, 0)
	for _, c := range r.courses {
		if !filter.IncludeInactive && !c.IsActive {
			continue
		}
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(c.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r fakeCourseRepo) ListPopular(ctx context.Context, limit int) ([]models.Course, error) {
	all, _ := r.List(ctx, models.CourseFilter{})
	out := make([]models.Course, 0)
	for _, c := range all {
		if c.IsPopular && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCourseRepo) FindByID(ctx context.Context, id string) (*models.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.courses {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = course.CreatedAt
	r.courses = append(r.courses, *course)
	return nil
}

func (r fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			r.courses[i] = *course
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeCourseRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeTestimonialRepo struct{ *fakeCatalog }

func (r fakeTestimonialRepo) List(ctx context.Context, includeInactive bool) ([]models.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Testimonial, 0)
	for _, t := range r.testimonials {
		if includeInactive || t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r fakeTestimonialRepo) FindByID(ctx context.Context, id string) (*models.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.testimonials {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeTestimonialRepo) Create(ctx context.Context, item *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.testimonials = append(r.testimonials, *item)
	return nil
}

func (r fakeTestimonialRepo) Update(ctx context.Context, item *models.Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.testimonials {
		if r.testimonials[i].ID == item.ID {
			r.testimonials[i] = *item
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeTestimonialRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.testimonials {
		if r.testimonials[i].ID == id {
			r.testimonials = append(r.testimonials[:i], r.testimonials[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []models.Contact
}

func (r *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if contact.ID == "" {
		contact.ID = uuid.NewString()
	}
	contact.CreatedAt = time.Now().UTC()
	r.contacts = append(r.contacts, *contact)
	return nil
}

func (r *fakeContactRepo) List(ctx context.Context, filter models.ContactFilter) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Contact, 0)
	for _, c := range r.contacts {
		if filter.Status == "" || c.Status == filter.Status {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *fakeContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts[i].Status = status
			r.contacts[i].UpdatedAt = updatedAt
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r *fakeContactRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.contacts {
		if r.contacts[i].ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeListCache struct {
	entries     map[string]interface{}
	invalidated []string
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{entries: make(map[string]interface{})}
}

func (c *fakeListCache) Get(ctx context.Context, key string, dest interface{}) bool {
	v, ok := c.entries[key]
	if !ok {
		return false
	}
	switch d := dest.(type) {
	case *[]models.Course:
		*d = v.([]models.Course)
	case *[]models.Testimonial:
		*d = v.([]models.Testimonial)
	default:
		return false
	}
	return true
}

func (c *fakeListCache) Set(ctx context.Context, key string, value interface{}) {
	c.entries[key] = value
}

func (c *fakeListCache) Invalidate(ctx context.Context, prefix string) {
	c.invalidated = append(c.invalidated, prefix)
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
