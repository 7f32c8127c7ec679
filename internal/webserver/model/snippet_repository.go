package model

import (
	"errors"
	"fmt"
	"log"

	"github.com/minutary/minutary/internal/result"
	"gorm.io/gorm"
)

type SnippetRepository struct {
	DB *gorm.DB
}

func (s *SnippetRepository) List(page int, resultsPerPage int, filter string) (result.Paginated[[]Snippet], error) {
	var snippets []Snippet

	query := s.DB
	if filter != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+filter+"%", "%"+filter+"%")
	}

	res := query.Scopes(Paginate(page, resultsPerPage)).Order("updated_at DESC").Find(&snippets)
	if res.Error != nil {
		log.Printf("error listing snippets: %s\n", res.Error)
		return result.Paginated[[]Snippet]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(s.Total(filter)),
		snippets,
	), nil
}

func (s *SnippetRepository) Total(filter string) int64 {
	var totalRows int64

	query := s.DB.Model(&Snippet{})
	if filter != "" {
		query = query.Where("title LIKE ? OR content LIKE ?", "%"+filter+"%", "%"+filter+"%")
	}
	query.Count(&totalRows)
	return totalRows
}

func (s *SnippetRepository) FindByUuid(uuid string) (*Snippet, error) {
	var snip Snippet

	result := s.DB.Where("uuid = ?", uuid).First(&snip)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &snip, result.Error
}

func (s *SnippetRepository) Create(snip *Snippet) error {
	if result := s.DB.Create(snip); result.Error != nil {
		log.Printf("error creating snippet: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (s *SnippetRepository) Update(snip *Snippet) error {
	if result := s.DB.Save(snip); result.Error != nil {
		log.Printf("error updating snippet: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (s *SnippetRepository) Delete(uuid string) error {
	var snip Snippet

	result := s.DB.Where("uuid = ?", uuid).Delete(&snip)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting snippet: %s\n", result.Error)
		return fmt.Errorf("error deleting snippet: %w", result.Error)
	}
	return nil
}
