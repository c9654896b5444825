package asset

import (
	"fmt"
	"strings"
	"time"
)

// AssetType is a device category such as Notebook or Monitor.
type AssetType struct {
	id   uint
	name string
}

func NewAssetType(name string) (*AssetType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("asset type name is required")
	}
	return &AssetType{name: name}, nil
}

func ReconstructAssetType(id uint, name string) *AssetType {
	return &AssetType{id: id, name: name}
}

func (t *AssetType) ID() uint      { return t.id }
func (t *AssetType) Name() string  { return t.name }
func (t *AssetType) SetID(id uint) { t.id = id }

// Rename returns true when the name actually changed.
func (t *AssetType) Rename(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, fmt.Errorf("asset type name is required")
	}
	changed := name != t.name
	t.name = name
	return changed, nil
}

// CostCenter is an accounting unit devices and people are billed to.
type CostCenter struct {
	id        uint
	code      string
	name      string
	createdAt time.Time
}

func NewCostCenter(code, name string) (*CostCenter, error) {
	cc := &CostCenter{createdAt: time.Now().UTC()}
	if err := cc.Update(code, name); err != nil {
		return nil, err
	}
	return cc, nil
}

func ReconstructCostCenter(id uint, code, name string, createdAt time.Time) *CostCenter {
	return &CostCenter{id: id, code: code, name: name, createdAt: createdAt}
}

func (c *CostCenter) ID() uint             { return c.id }
func (c *CostCenter) Code() string         { return c.code }
func (c *CostCenter) Name() string         { return c.name }
func (c *CostCenter) CreatedAt() time.Time { return c.createdAt }
func (c *CostCenter) SetID(id uint)        { c.id = id }

func (c *CostCenter) Update(code, name string) error {
	code, name = strings.TrimSpace(code), strings.TrimSpace(name)
	if code == "" || name == "" {
		return fmt.Errorf("code and name are required")
	}
	c.code, c.name = code, name
	return nil
}

// DeviceUser is a person devices are handed to. It is not a login account.
type DeviceUser struct {
	id           uint
	firstName    string
	lastName     string
	email        string
	department   string
	costCenterID *uint
}

// DeviceUserFields are the editable fields of a DeviceUser.
type DeviceUserFields struct {
	FirstName    string
	LastName     string
	Email        string
	Department   string
	CostCenterID *uint
}

func NewDeviceUser(f DeviceUserFields) (*DeviceUser, error) {
	u := &DeviceUser{}
	if err := u.Update(f); err != nil {
		return nil, err
	}
	return u, nil
}

func ReconstructDeviceUser(id uint, f DeviceUserFields) *DeviceUser {
	return &DeviceUser{
		id:           id,
		firstName:    f.FirstName,
		lastName:     f.LastName,
		email:        f.Email,
		department:   f.Department,
		costCenterID: f.CostCenterID,
	}
}

func (u *DeviceUser) ID() uint            { return u.id }
func (u *DeviceUser) FirstName() string   { return u.firstName }
func (u *DeviceUser) LastName() string    { return u.lastName }
func (u *DeviceUser) Email() string       { return u.email }
func (u *DeviceUser) Department() string  { return u.department }
func (u *DeviceUser) CostCenterID() *uint { return u.costCenterID }
func (u *DeviceUser) SetID(id uint)       { u.id = id }

func (u *DeviceUser) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *DeviceUser) Update(f DeviceUserFields) error {
	first, email := strings.TrimSpace(f.FirstName), strings.TrimSpace(f.Email)
	if first == "" || email == "" {
		return fmt.Errorf("first name and email are required")
	}
	u.firstName = first
	u.lastName = strings.TrimSpace(f.LastName)
	u.email = email
	u.department = strings.TrimSpace(f.Department)
	u.costCenterID = f.CostCenterID
	return nil
}
