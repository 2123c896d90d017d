package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DirectPlatform is the in-house zero-fee channel every outlet gets on
// registration, and the fallback schedule for unconfigured platforms.
const DirectPlatform = "Direct"

// Registry owns the active outlet set and per-outlet platform fee schedules.
type Registry struct {
	s *Store
}

func NewRegistry(s *Store) *Registry {
	return &Registry{s: s}
}

// Register creates an outlet with a default Direct platform (0% commission,
// 0 delivery fee). Re-registering an existing name is a hard error, not an
// upsert.
func (r *Registry) Register(name string) (Outlet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Outlet{}, fmt.Errorf("outlet name is required: %w", ErrValidation)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.findOutlet(name) != nil {
		return Outlet{}, fmt.Errorf("outlet %q: %w", name, ErrDuplicate)
	}

	o := &Outlet{
		Name:      name,
		Platforms: []PlatformConfig{{Name: DirectPlatform}},
		CreatedAt: time.Now(),
	}
	r.s.outlets = append(r.s.outlets, o)
	return copyOutlet(o), nil
}

// Remove takes an outlet out of the active set. Stock, sale and expense
// records keep the name and live on as the historical record — removal is
// never cascaded. The last remaining outlet cannot be removed.
func (r *Registry) Remove(name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := -1
	for i, o := range r.s.outlets {
		if o.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("outlet %q: %w", name, ErrUnknownOutlet)
	}
	if len(r.s.outlets) == 1 {
		return fmt.Errorf("outlet %q: %w", name, ErrLastOutlet)
	}

	r.s.outlets = append(r.s.outlets[:idx], r.s.outlets[idx+1:]...)
	return nil
}

// Rename changes the outlet's name and rewrites the outlet field on every
// stock line, sale and expense that references the old name. All rewrites
// happen under one hold of the store lock, so readers see either all of the
// rename or none of it.
func (r *Registry) Rename(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("new outlet name is required: %w", ErrValidation)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o := r.s.findOutlet(oldName)
	if o == nil {
		return fmt.Errorf("outlet %q: %w", oldName, ErrUnknownOutlet)
	}
	if newName == oldName {
		return nil
	}
	if r.s.findOutlet(newName) != nil {
		return fmt.Errorf("outlet %q: %w", newName, ErrDuplicate)
	}

	o.Name = newName
	for _, l := range r.s.stock {
		if l.Outlet == oldName {
			l.Outlet = newName
		}
	}
	for _, sale := range r.s.sales {
		if sale.Outlet == oldName {
			sale.Outlet = newName
		}
	}
	for _, e := range r.s.expenses {
		if e.Outlet == oldName {
			e.Outlet = newName
		}
	}
	return nil
}

// ConfigurePlatform upserts the fee schedule for (outlet, platform).
// Last write wins.
func (r *Registry) ConfigurePlatform(outlet, platform string, commissionPercent, deliveryFee float64) (PlatformConfig, error) {
	platform = strings.TrimSpace(platform)
	if platform == "" {
		return PlatformConfig{}, fmt.Errorf("platform name is required: %w", ErrValidation)
	}
	if commissionPercent < 0 || commissionPercent > 100 {
		return PlatformConfig{}, fmt.Errorf("commission must be between 0 and 100: %w", ErrValidation)
	}
	if deliveryFee < 0 {
		return PlatformConfig{}, fmt.Errorf("delivery fee cannot be negative: %w", ErrValidation)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o := r.s.findOutlet(outlet)
	if o == nil {
		return PlatformConfig{}, fmt.Errorf("outlet %q: %w", outlet, ErrUnknownOutlet)
	}

	pc := PlatformConfig{Name: platform, CommissionPercent: commissionPercent, DeliveryFee: deliveryFee}
	for i := range o.Platforms {
		if o.Platforms[i].Name == platform {
			o.Platforms[i] = pc
			return pc, nil
		}
	}
	o.Platforms = append(o.Platforms, pc)
	return pc, nil
}

// List returns the active outlets sorted by name.
func (r *Registry) List() []Outlet {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]Outlet, 0, len(r.s.outlets))
	for _, o := range r.s.outlets {
		out = append(out, copyOutlet(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Platforms returns the fee schedules configured for one outlet.
func (r *Registry) Platforms(outlet string) ([]PlatformConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	o := r.s.findOutlet(outlet)
	if o == nil {
		return nil, fmt.Errorf("outlet %q: %w", outlet, ErrUnknownOutlet)
	}
	return append([]PlatformConfig(nil), o.Platforms...), nil
}
