package repository

import (
	"context"
	"sort"
	"sync"

	"gramvista/internal/model"
)

// MemoryStore implements every repository in process memory. A single mutex
// serializes writes, so the email check and the insert in Create* are atomic.
type MemoryStore struct {
	mu sync.Mutex

	byEmail  map[string]model.Role
	users    map[string]*model.User
	vendors  map[string]*model.Vendor
	vendorPK map[int64]struct{}
	publicID map[string]struct{}

	products []model.Product
	bookings []model.ExperienceBooking

	principalSeq int64
	productSeq   int64
	bookingSeq   int64
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byEmail:  make(map[string]model.Role),
		users:    make(map[string]*model.User),
		vendors:  make(map[string]*model.Vendor),
		vendorPK: make(map[int64]struct{}),
		publicID: make(map[string]struct{}),
	}
}

var (
	_ PrincipalRepository = (*MemoryStore)(nil)
	_ ProductRepository   = (*MemoryProducts)(nil)
	_ BookingRepository   = (*MemoryBookings)(nil)
)

// --- PrincipalRepository ---

func (s *MemoryStore) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[user.Email]; taken {
		return ErrEmailTaken
	}
	s.principalSeq++
	user.ID = s.principalSeq
	u := *user
	s.users[u.Email] = &u
	s.byEmail[u.Email] = model.RoleUser
	return nil
}

func (s *MemoryStore) CreateVendor(ctx context.Context, vendor *model.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byEmail[vendor.Email]; taken {
		return ErrEmailTaken
	}
	if _, taken := s.publicID[vendor.VendorID]; taken {
		return ErrVendorIDTaken
	}
	s.principalSeq++
	vendor.ID = s.principalSeq
	v := *vendor
	s.vendors[v.Email] = &v
	s.vendorPK[v.ID] = struct{}{}
	s.publicID[v.VendorID] = struct{}{}
	s.byEmail[v.Email] = model.RoleVendor
	return nil
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) FindVendorByEmail(ctx context.Context, email string) (*model.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[email]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s *MemoryStore) RoleByEmail(ctx context.Context, email string) (model.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byEmail[email], nil
}

func (s *MemoryStore) VendorExists(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.vendorPK[id]
	return ok, nil
}

// Products exposes the store as a ProductRepository.
func (s *MemoryStore) Products() *MemoryProducts { return (*MemoryProducts)(s) }

// Bookings exposes the store as a BookingRepository.
func (s *MemoryStore) Bookings() *MemoryBookings { return (*MemoryBookings)(s) }

// --- ProductRepository ---

// MemoryProducts is the product view of a MemoryStore.
type MemoryProducts MemoryStore

func (p *MemoryProducts) Create(ctx context.Context, product *model.Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.productSeq++
	product.ID = p.productSeq
	p.products = append(p.products, *product)
	return nil
}

func (p *MemoryProducts) FindByVendor(ctx context.Context, vendorID int64) ([]model.Product, error) {
	return p.filter(func(pr model.Product) bool { return pr.VendorID == vendorID }), nil
}

func (p *MemoryProducts) FindByType(ctx context.Context, productType string) ([]model.Product, error) {
	return p.filter(func(pr model.Product) bool { return pr.ProductType == productType }), nil
}

func (p *MemoryProducts) filter(keep func(model.Product) bool) []model.Product {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := []model.Product{}
	for _, pr := range p.products {
		if keep(pr) {
			out = append(out, pr)
		}
	}
	// newest first, same as the SQL ordering
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// --- BookingRepository ---

// MemoryBookings is the booking view of a MemoryStore.
type MemoryBookings MemoryStore

func (b *MemoryBookings) Create(ctx context.Context, booking *model.ExperienceBooking) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bookingSeq++
	booking.ID = b.bookingSeq
	b.bookings = append(b.bookings, *booking)
	return nil
}

func (b *MemoryBookings) FindByUser(ctx context.Context, userID int64) ([]model.ExperienceBooking, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := []model.ExperienceBooking{}
	for _, bk := range b.bookings {
		if bk.UserID == userID {
			out = append(out, bk)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
