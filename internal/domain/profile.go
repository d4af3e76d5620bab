package domain

// BusinessType is the legal structure of the business entity.
type BusinessType string

const (
	SoleProprietorship BusinessType = "sole_proprietorship"
	Partnership        BusinessType = "partnership"
	PrivateLimited     BusinessType = "private_limited"
	PublicLimited      BusinessType = "public_limited"
	LLP                BusinessType = "llp"
)

// Industry is the sector the business operates in.
type Industry string

const (
	Manufacturing Industry = "manufacturing"
	Retail        Industry = "retail"
	Agriculture   Industry = "agriculture"
	Services      Industry = "services"
	Logistics     Industry = "logistics"
	Ecommerce     Industry = "ecommerce"
	Technology    Industry = "technology"
	Healthcare    Industry = "healthcare"
	Hospitality   Industry = "hospitality"
	Construction  Industry = "construction"
)

// BusinessSize buckets the business by scale.
type BusinessSize string

const (
	SizeSmall  BusinessSize = "Small"
	SizeMedium BusinessSize = "Medium"
	SizeLarge  BusinessSize = "Large"
)

// BusinessProfile describes the business under analysis. It is captured on
// the first workflow stage and immutable afterwards, except via reset.
type BusinessProfile struct {
	Name             string       `json:"name"`
	BusinessType     BusinessType `json:"business_type"`
	Industry         Industry     `json:"industry"`
	Size             BusinessSize `json:"size"`
	Location         string       `json:"location,omitempty"`
	YearsInOperation int          `json:"years_in_operation,omitempty"`
}

// DefaultProfile is stored when the user skips the profile form.
func DefaultProfile() *BusinessProfile {
	return &BusinessProfile{
		Name:         "My Business",
		BusinessType: PrivateLimited,
		Industry:     Services,
		Size:         SizeMedium,
	}
}

// Valid reports whether the enum value is one of the known business types.
func (t BusinessType) Valid() bool {
	switch t {
	case SoleProprietorship, Partnership, PrivateLimited, PublicLimited, LLP:
		return true
	}
	return false
}

// Valid reports whether the enum value is one of the known industries.
func (i Industry) Valid() bool {
	switch i {
	case Manufacturing, Retail, Agriculture, Services, Logistics,
		Ecommerce, Technology, Healthcare, Hospitality, Construction:
		return true
	}
	return false
}

// Valid reports whether the enum value is one of the known sizes.
func (s BusinessSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Validate checks the profile fields against their enum domains.
func (p *BusinessProfile) Validate() error {
	if p.Name == "" {
		return &ErrValidation{Field: "name", Message: "business name is required"}
	}
	if !p.BusinessType.Valid() {
		return &ErrValidation{Field: "business_type", Message: "unknown business type"}
	}
	if !p.Industry.Valid() {
		return &ErrValidation{Field: "industry", Message: "unknown industry"}
	}
	if !p.Size.Valid() {
		return &ErrValidation{Field: "size", Message: "unknown business size"}
	}
	if p.YearsInOperation < 0 {
		return &ErrValidation{Field: "years_in_operation", Message: "must be zero or positive"}
	}
	return nil
}
