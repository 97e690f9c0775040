package models

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StringList stores a slice of skill names as a JSON text column so the same
// model works on both postgres and sqlite.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string list: %T", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return nil
}

type Analysis struct {
	ID             string     `gorm:"type:char(24);primary_key" json:"_id"`
	ResumeText     string     `gorm:"type:text" json:"resume_text"`
	ResumeSkills   StringList `gorm:"type:text" json:"resume_skills"`
	JobDescription string     `gorm:"type:text" json:"job_description"`
	JDSkills       StringList `gorm:"type:text" json:"jd_skills"`
	MatchedSkills  StringList `gorm:"type:text" json:"matched_skills"`
	MissingSkills  StringList `gorm:"type:text" json:"missing_skills"`
	Score          float64    `gorm:"index" json:"score"`
	CreatedAt      time.Time  `gorm:"index;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Analysis) TableName() string {
	return "analyses"
}

// NewAnalysisID produces a 24-character hex identifier: a 4-byte unix
// timestamp followed by 8 random bytes. IDs sort roughly by creation time.
func NewAnalysisID() string {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	u := uuid.New()
	copy(b[4:], u[:8])
	return hex.EncodeToString(b[:])
}
