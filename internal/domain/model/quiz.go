package model

type Quiz struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;type:varchar(100)" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// Order 欄位定義每題的顯示順序, 遞增排序
type QuizQuestion struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	QuizID   int    `gorm:"not null;index" json:"quizId"`
	Question string `gorm:"not null;type:text" json:"question"`
	Order    int    `gorm:"column:order;not null" json:"order"`
}

// ProductID 可為空, 空選項不參與推薦投票
type QuizOption struct {
	ID         int    `gorm:"primaryKey" json:"id"`
	QuestionID int    `gorm:"not null;index" json:"questionId"`
	Text       string `gorm:"not null;type:text" json:"text"`
	ProductID  *int   `json:"productId"`
	Order      int    `gorm:"column:order;not null" json:"order"`
}

// QuizWithQuestions 巢狀回傳用, questions/options 均照 order 排序
type QuizWithQuestions struct {
	Quiz
	Questions []QuestionWithOptions `json:"questions"`
}

type QuestionWithOptions struct {
	QuizQuestion
	Options []QuizOption `json:"options"`
}
