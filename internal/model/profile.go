package model

import "time"

// BirthdateLayout is the wire format of Profile.Birthdate in forms.
const BirthdateLayout = "2006-01-02"

type Profile struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Gender    bool      `db:"gender"`
	Birthdate time.Time `db:"birthdate"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Profile) BirthdateString() string {
	if p.Birthdate.IsZero() {
		return ""
	}
	return p.Birthdate.Format(BirthdateLayout)
}

// ProfileFields are the user-editable columns of a Profile.
type ProfileFields struct {
	FirstName string
	LastName  string
	Gender    bool
	Birthdate time.Time
}

// Apply copies the fields onto p. ID and UserID are never touched.
func (f ProfileFields) Apply(p *Profile) {
	p.FirstName = f.FirstName
	p.LastName = f.LastName
	p.Gender = f.Gender
	p.Birthdate = f.Birthdate
}

// ProfilePage is one page of the admin profile listing.
type ProfilePage struct {
	Profiles []*Profile
	Page     int
	PerPage  int
	Total    int
}

func (p *ProfilePage) TotalPages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}

func (p *ProfilePage) HasPrev() bool {
	return p.Page > 1
}

func (p *ProfilePage) HasNext() bool {
	return p.Page < p.TotalPages()
}

// OwnerID makes Profile a policy.Owned record.
func (p *Profile) OwnerID() string {
	if p == nil {
		return ""
	}
	return p.UserID
}
