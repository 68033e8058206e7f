package db

type AccountType int

const (
	AccountNormal AccountType = 0
	AccountAdmin  AccountType = 1
)

type Account struct {
	Id          int64
	Email       string      `gorm:"NOT NULL;uniqueIndex:idx_account_email;size:128"`
	Type        AccountType `gorm:"NOT NULL"`
	CreatedTime int64       `gorm:"NOT NULL"`
}

func (*Account) TableName() string {
	return "account"
}

type Preference struct {
	Id         int64
	OwnerEmail string `gorm:"NOT NULL;uniqueIndex:idx_preference_owner_key;size:128"`
	Key        string `gorm:"column:pref_key;NOT NULL;uniqueIndex:idx_preference_owner_key;size:64"`
	Value      string `gorm:"NOT NULL"`
}

func (*Preference) TableName() string {
	return "preference"
}
