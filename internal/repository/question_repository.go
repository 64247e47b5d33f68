package repository

import (
	"fe_exam_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// BankInfo summarizes one year/season question bank.
type BankInfo struct {
	Year   int    `json:"year"`
	Season string `json:"season"`
	Count  int64  `json:"count"`
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) FindByExternalID(externalID string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("external_id = ?", externalID).First(&q).Error
	return &q, err
}

// ListOrdered returns the whole catalog in external-id order, the global
// ordering coverage and achievement filters preserve.
func (r *QuestionRepository) ListOrdered() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Order("external_id ASC").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListByGenre(genre string, limit int) ([]model.Question, error) {
	var questions []model.Question
	q := r.DB.Order("external_id ASC")
	if genre != "" {
		q = q.Where("genre = ?", genre)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListByBank(year int, season string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("year = ? AND season = ?", year, season).
		Order("external_id ASC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) Genres() ([]string, error) {
	var genres []string
	err := r.DB.Model(&model.Question{}).
		Distinct("genre").
		Where("genre <> ''").
		Order("genre ASC").
		Pluck("genre", &genres).Error
	return genres, err
}

func (r *QuestionRepository) Banks() ([]BankInfo, error) {
	var banks []BankInfo
	err := r.DB.Model(&model.Question{}).
		Select("year, season, COUNT(*) AS count").
		Where("year > 0").
		Group("year, season").
		Order("year DESC, season ASC").
		Scan(&banks).Error
	return banks, err
}

func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Count(&count).Error
	return count, err
}

// Upsert inserts the question or, when the external id already exists,
// replaces its content. Bank re-uploads are idempotent this way.
func (r *QuestionRepository) Upsert(q *model.Question) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"year", "season", "genre", "text",
			"choice_a", "choice_b", "choice_c", "choice_d",
			"answer", "explanation", "image", "updated_at",
		}),
	}).Create(q).Error
}
