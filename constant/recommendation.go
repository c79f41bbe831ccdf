package constant

// =============================================
// 建议类型常量
// =============================================

// RecommendationType 建议类型
type RecommendationType string

const (
	// RecommendationTypeProject 项目实践
	RecommendationTypeProject RecommendationType = "project"
	// RecommendationTypeProblem 刷题练习
	RecommendationTypeProblem RecommendationType = "problem"
	// RecommendationTypeSkill 技能提升
	RecommendationTypeSkill RecommendationType = "skill"
	// RecommendationTypeLearning 学习路线
	RecommendationTypeLearning RecommendationType = "learning"
)

// String 返回类型的字符串值
func (t RecommendationType) String() string {
	return string(t)
}

// IsValid 检查类型是否有效
func (t RecommendationType) IsValid() bool {
	switch t {
	case RecommendationTypeProject, RecommendationTypeProblem, RecommendationTypeSkill, RecommendationTypeLearning:
		return true
	}
	return false
}

// =============================================
// 难度常量
// =============================================

// Difficulty 建议难度
type Difficulty string

const (
	// DifficultyBeginner 入门
	DifficultyBeginner Difficulty = "beginner"
	// DifficultyIntermediate 进阶
	DifficultyIntermediate Difficulty = "intermediate"
	// DifficultyAdvanced 高级
	DifficultyAdvanced Difficulty = "advanced"
)

// String 返回难度的字符串值
func (d Difficulty) String() string {
	return string(d)
}

// IsValid 检查难度是否有效
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
