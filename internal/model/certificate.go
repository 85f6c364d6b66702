package model

// CertificateType 证书NFT类型，与合约的 uint8 certificateType 对应
type CertificateType uint8

const (
	CertModuleCompletion CertificateType = iota
	CertLevelCompletion
	CertProjectCompletion
	CertCourseCompletion
)

// CertificateMint 铸造记录。链上执行目前为模拟，TxHash 为伪哈希。
// swagger:model CertificateMint
type CertificateMint struct {
	BaseModel
	UserID        uint            `gorm:"index;not null" json:"userId"`
	WalletAddress string          `gorm:"size:42;not null" json:"walletAddress"`
	ChainID       int64           `gorm:"not null" json:"chainId"`
	Type          CertificateType `gorm:"not null" json:"type"`
	ReferenceID   string          `gorm:"size:64;not null" json:"referenceId"` // module id / project id / level name
	TokenID       uint64          `json:"tokenId"`
	TokenURI      string          `gorm:"size:512" json:"tokenUri"`
	TxHash        string          `gorm:"size:66" json:"txHash"`
	Simulated     bool            `gorm:"default:true" json:"simulated"`
}

func (CertificateMint) TableName() string {
	return "certificate_mints"
}
