package service

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fe_exam_backend/internal/model"
	"fe_exam_backend/internal/repository"
	"fe_exam_backend/internal/util"
	"fe_exam_backend/pkg/logger"
	"fe_exam_backend/pkg/monitoring"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// BankService imports question banks uploaded by administrators, either a
// bare JSON file or a ZIP archive carrying the JSON plus referenced images.
type BankService struct {
	QuestionRepo *repository.QuestionRepository
	Questions    *QuestionService
	Storage      *StorageService
}

func NewBankService(
	questionRepo *repository.QuestionRepository,
	questions *QuestionService,
	storage *StorageService,
) *BankService {
	return &BankService{
		QuestionRepo: questionRepo,
		Questions:    questions,
		Storage:      storage,
	}
}

// QuestionImport is one entry of an uploaded bank file.
type QuestionImport struct {
	QuestionID  string `json:"question_id"`
	Genre       string `json:"genre"`
	Text        string `json:"question"`
	ChoiceA     string `json:"choice_a"`
	ChoiceB     string `json:"choice_b"`
	ChoiceC     string `json:"choice_c"`
	ChoiceD     string `json:"choice_d"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Image       string `json:"image"`
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Images   int `json:"images"`
}

// ImportJSON upserts every valid entry of the decoded bank. Invalid entries
// are skipped and counted rather than failing the whole upload. imageURLs
// maps sanitized image names to stored object URLs (empty for bare JSON
// uploads, where image references are kept as sanitized names).
func (s *BankService) ImportJSON(r io.Reader, imageURLs map[string]string) (*ImportSummary, error) {
	var entries []QuestionImport
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}

	summary := &ImportSummary{}
	for _, entry := range entries {
		if err := s.importOne(entry, imageURLs); err != nil {
			logger.Log.Warn("bank entry skipped",
				zap.String("questionId", entry.QuestionID),
				zap.Error(err))
			summary.Skipped++
			monitoring.BankImportCounter.WithLabelValues("skipped").Inc()
			continue
		}
		summary.Imported++
		monitoring.BankImportCounter.WithLabelValues("imported").Inc()
	}

	if summary.Imported > 0 {
		s.Questions.InvalidateCache()
	}
	return summary, nil
}

// ImportZip extracts a bank archive: image entries are stored through the
// storage provider under fresh uuid names, then every JSON entry is imported
// with image references rewritten to the stored URLs.
func (s *BankService) ImportZip(ctx context.Context, path string) (*ImportSummary, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	imageURLs := map[string]string{}
	var jsonFiles []*zip.File

	for _, f := range archive.File {
		if f.FileInfo().IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(f.Name)) {
		case ".json":
			jsonFiles = append(jsonFiles, f)
		case ".png", ".jpg", ".jpeg", ".gif":
			url, err := s.storeImage(ctx, f)
			if err != nil {
				logger.Log.Warn("bank image skipped",
					zap.String("name", f.Name),
					zap.Error(err))
				continue
			}
			imageURLs[util.SanitizeImageName(f.Name)] = url
		}
	}

	summary := &ImportSummary{Images: len(imageURLs)}
	for _, f := range jsonFiles {
		rc, err := f.Open()
		if err != nil {
			return summary, err
		}
		part, err := s.ImportJSON(rc, imageURLs)
		rc.Close()
		if err != nil {
			return summary, err
		}
		summary.Imported += part.Imported
		summary.Skipped += part.Skipped
	}

	return summary, nil
}

func (s *BankService) importOne(entry QuestionImport, imageURLs map[string]string) error {
	if entry.QuestionID == "" || entry.Text == "" {
		return util.ErrBankEntryInvalid
	}

	answer := strings.ToLower(strings.TrimSpace(entry.Answer))
	if !validChoice(answer) {
		return util.ErrInvalidChoice
	}

	question := &model.Question{
		ExternalID:  entry.QuestionID,
		Genre:       entry.Genre,
		Text:        entry.Text,
		ChoiceA:     entry.ChoiceA,
		ChoiceB:     entry.ChoiceB,
		ChoiceC:     entry.ChoiceC,
		ChoiceD:     entry.ChoiceD,
		Answer:      answer,
		Explanation: entry.Explanation,
	}

	// Unparseable ids import fine, they just stay outside bank queries
	// and coverage.
	if examID, ok := util.ParseExamID(entry.QuestionID); ok {
		question.Year = examID.Year
		question.Season = examID.Season
	}

	if entry.Image != "" {
		name := util.SanitizeImageName(entry.Image)
		if url, ok := imageURLs[name]; ok {
			question.Image = url
		} else {
			question.Image = name
		}
	}

	return s.QuestionRepo.Upsert(question)
}

func (s *BankService) storeImage(ctx context.Context, f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(f.Name)))
	stored := util.StoredImageName(f.Name)
	return s.Storage.Upload(ctx, stored, rc, int64(f.UncompressedSize64), contentType)
}

// SeedSamples loads a small demo bank when the question table is empty, so
// a fresh install has something to practice on.
func (s *BankService) SeedSamples() (*ImportSummary, error) {
	count, err := s.QuestionRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &ImportSummary{}, nil
	}

	return s.ImportJSON(strings.NewReader(sampleBank), nil)
}

const sampleBank = `[
  {"question_id": "2024_s_q1", "genre": "Technology", "question": "Which of the following is the two's complement representation of -6 in 8 bits?", "choice_a": "11111010", "choice_b": "11111001", "choice_c": "10000110", "choice_d": "00000110", "answer": "a", "explanation": "Invert 00000110 and add one: 11111010."},
  {"question_id": "2024_s_q2", "genre": "Technology", "question": "Which data structure processes elements in last-in first-out order?", "choice_a": "Queue", "choice_b": "Stack", "choice_c": "Heap", "choice_d": "Linked list", "answer": "b", "explanation": "A stack pushes and pops at the same end."},
  {"question_id": "2024_s_q3", "genre": "Management", "question": "In project management, which chart shows task durations against a calendar?", "choice_a": "Pareto chart", "choice_b": "Scatter diagram", "choice_c": "Gantt chart", "choice_d": "Control chart", "answer": "c", "explanation": "Gantt charts plot tasks as horizontal bars over time."},
  {"question_id": "2024_s_q4", "genre": "Strategy", "question": "Which analysis classifies a company's internal strengths and weaknesses together with external opportunities and threats?", "choice_a": "3C analysis", "choice_b": "PPM", "choice_c": "Value chain analysis", "choice_d": "SWOT analysis", "answer": "d", "explanation": "SWOT stands for strengths, weaknesses, opportunities and threats."},
  {"question_id": "2023_a_q1", "genre": "Technology", "question": "What is the result of the logical expression (A AND B) OR (NOT A) when A is false?", "choice_a": "true", "choice_b": "false", "choice_c": "undefined", "choice_d": "equal to B", "answer": "a", "explanation": "NOT A is true when A is false, so the OR is true."},
  {"question_id": "2023_a_q2", "genre": "Technology", "question": "Which of the following is a characteristic of a relational database primary key?", "choice_a": "It may contain NULL", "choice_b": "It uniquely identifies each row", "choice_c": "It must be a number", "choice_d": "It can duplicate across rows", "answer": "b", "explanation": "Primary keys are unique and non-null."},
  {"question_id": "2023_a_q3", "genre": "Management", "question": "Which activity belongs to system acceptance testing?", "choice_a": "Unit testing by developers", "choice_b": "Code review", "choice_c": "Verification by the ordering party against requirements", "choice_d": "Regression testing during development", "answer": "c", "explanation": "Acceptance testing is performed by the customer against the requirements."},
  {"question_id": "2023_a_q4", "genre": "Strategy", "question": "Which pricing strategy sets a low initial price to gain market share quickly?", "choice_a": "Skimming", "choice_b": "Prestige pricing", "choice_c": "Cost-plus pricing", "choice_d": "Penetration pricing", "answer": "d", "explanation": "Penetration pricing trades early margin for share."}
]`
