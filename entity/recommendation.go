package entity

import "time"

const (
	TableNameRecommendation = "ai_recommendations"

	RecommendationFieldID                  = "id"
	RecommendationFieldUserID              = "user_id"
	RecommendationFieldRecommendationsJSON = "recommendations_json"
	RecommendationFieldGeneratedAt         = "generated_at"
)

// Recommendation 建议记录数据库实体
// recommendations_json 保存有序的建议数组，追加写入，不做更新。
type Recommendation struct {
	ID                  string    `xorm:"pk varchar(64) 'id'" json:"id"`
	UserID              string    `xorm:"varchar(64) index 'user_id'" json:"user_id"`
	RecommendationsJSON string    `xorm:"text 'recommendations_json'" json:"recommendations_json"`
	GeneratedAt         time.Time `xorm:"'generated_at'" json:"generated_at"`
}

func (e *Recommendation) TableName() string {
	return TableNameRecommendation
}
