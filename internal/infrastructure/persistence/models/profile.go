package models

import (
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/profile"
)

// ProfileModel is the persistence model for the customer Profile aggregate
type ProfileModel struct {
	AggregateModel
	Email          string `gorm:"type:varchar(255);not null;uniqueIndex"`
	FullName       string `gorm:"type:varchar(255);not null"`
	FirstName      string `gorm:"type:varchar(100)"`
	LastName       string `gorm:"type:varchar(100)"`
	Company        string `gorm:"type:varchar(255)"`
	Phone          string `gorm:"type:varchar(50)"`
	Street1        string `gorm:"type:varchar(255)"`
	Street2        string `gorm:"type:varchar(255)"`
	City           string `gorm:"type:varchar(100)"`
	State          string `gorm:"type:varchar(100)"`
	Zip            string `gorm:"type:varchar(20)"`
	Country        string `gorm:"type:varchar(100)"`
	LegacyID       string `gorm:"type:varchar(100)"`
	IsLegacyImport bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts the persistence model to a domain Profile aggregate
func (m *ProfileModel) ToDomain() *profile.Profile {
	p := &profile.Profile{
		Email:          m.Email,
		FullName:       m.FullName,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Company:        m.Company,
		Phone:          m.Phone,
		Street1:        m.Street1,
		Street2:        m.Street2,
		City:           m.City,
		State:          m.State,
		Zip:            m.Zip,
		Country:        m.Country,
		LegacyID:       m.LegacyID,
		IsLegacyImport: m.IsLegacyImport,
	}
	m.PopulateAggregateRoot(&p.BaseAggregateRoot)
	return p
}

// FromDomain populates the persistence model from a domain Profile aggregate
func (m *ProfileModel) FromDomain(p *profile.Profile) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Email = p.Email
	m.FullName = p.FullName
	m.FirstName = p.FirstName
	m.LastName = p.LastName
	m.Company = p.Company
	m.Phone = p.Phone
	m.Street1 = p.Street1
	m.Street2 = p.Street2
	m.City = p.City
	m.State = p.State
	m.Zip = p.Zip
	m.Country = p.Country
	m.LegacyID = p.LegacyID
	m.IsLegacyImport = p.IsLegacyImport
}

// ProfileModelFromDomain creates a new persistence model from a domain Profile
func ProfileModelFromDomain(p *profile.Profile) *ProfileModel {
	m := &ProfileModel{}
	m.FromDomain(p)
	return m
}
