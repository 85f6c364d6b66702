package service

import (
	"errors"
	"strings"
	"unicode"
	"web3_journey_backend/internal/model"
	"web3_journey_backend/internal/repository"
	"web3_journey_backend/internal/util"

	"gorm.io/gorm"
)

type NoteService struct {
	NoteRepo *repository.NoteRepository
}

func NewNoteService(noteRepo *repository.NoteRepository) *NoteService {
	return &NoteService{NoteRepo: noteRepo}
}

// countWords 中日韩字符按单字计数，其余按空白分词
func countWords(content string) int {
	count := 0
	inWord := false
	for _, r := range content {
		switch {
		case unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			count++
			inWord = false
		case unicode.IsSpace(r):
			inWord = false
		default:
			if !inWord {
				count++
				inWord = true
			}
		}
	}
	return count
}

func validReferenceType(t string) bool {
	switch t {
	case "module", "topic", "project":
		return true
	}
	return false
}

func (s *NoteService) Create(userID uint, referenceType, referenceID, title, content string, tags []string) (*model.LearningNote, error) {
	if !validReferenceType(referenceType) {
		return nil, util.ErrInvalidReference
	}
	if tags == nil {
		tags = []string{}
	}
	note := &model.LearningNote{
		UserID:        userID,
		ReferenceType: referenceType,
		ReferenceID:   referenceID,
		Title:         strings.TrimSpace(title),
		Content:       content,
		Tags:          tags,
		WordCount:     countWords(content),
	}
	if err := s.NoteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) List(userID uint, referenceType, referenceID string) ([]model.LearningNote, error) {
	return s.NoteRepo.FindByUser(userID, referenceType, referenceID)
}

func (s *NoteService) Get(id string, userID uint) (*model.LearningNote, error) {
	note, err := s.NoteRepo.FindByID(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

type NoteUpdate struct {
	Title   *string
	Content *string
	Tags    []string
	Pinned  *bool
}

func (s *NoteService) Update(id string, userID uint, update NoteUpdate) (*model.LearningNote, error) {
	note, err := s.Get(id, userID)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		note.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		note.Content = *update.Content
		note.WordCount = countWords(note.Content)
	}
	if update.Tags != nil {
		note.Tags = update.Tags
	}
	if update.Pinned != nil {
		note.Pinned = *update.Pinned
	}
	if err := s.NoteRepo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(id string, userID uint) error {
	if _, err := s.Get(id, userID); err != nil {
		return err
	}
	return s.NoteRepo.Delete(id, userID)
}
