package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Financial-Times/go-logger/v2"
	"github.com/Financial-Times/kos-utils/annotations"
	"github.com/Financial-Times/kos-utils/utils"
	metrics "github.com/rcrowley/go-metrics"
	"golang.org/x/text/language"
)

const uriFallbackMetric = "display.prefLabel.uriFallback"

var errNoLanguages = errors.New("no preferred languages configured")

// ItemDisplay is everything the front-end shows for an item.
type ItemDisplay struct {
	PrefLabel  string   `json:"prefLabel"`
	Definition []string `json:"definition"`
	Notation   string   `json:"notation"`
}

type CreatorInfo struct {
	URI     string `json:"uri,omitempty"`
	Name    string `json:"name"`
	Matches bool   `json:"matches"`
}

// DisplayService serves the helper functions to HTTP clients. It owns one options store
// and serialises access to it.
type DisplayService struct {
	mu           sync.RWMutex
	options      *utils.Options
	notations    utils.NotationFormatter
	dates        utils.DateFormatter
	uriFallbacks metrics.Counter
	log          *logger.UPPLogger
}

func NewDisplayService(options *utils.Options, notations utils.NotationFormatter, dates utils.DateFormatter, registry metrics.Registry, log *logger.UPPLogger) *DisplayService {
	return &DisplayService{
		options:      options,
		notations:    notations,
		dates:        dates,
		uriFallbacks: metrics.GetOrRegisterCounter(uriFallbackMetric, registry),
		log:          log,
	}
}

func (s *DisplayService) Display(item *utils.Item, lang string, typeHint string, adjust bool, tid string) ItemDisplay {
	s.mu.RLock()
	defer s.mu.RUnlock()

	label := s.options.PrefLabel(item, utils.WithLanguage(lang), utils.WithoutURIFallback())
	if label == "" && item != nil && item.URI != "" {
		s.log.WithFields(map[string]interface{}{"transaction_id": tid, "uri": item.URI}).Debug("No label resolved, falling back to URI")
		s.uriFallbacks.Inc(1)
		label = item.URI
	}
	return ItemDisplay{
		PrefLabel:  label,
		Definition: s.options.Definition(item, utils.WithLanguage(lang)),
		Notation:   s.notations.Notation(item, typeHint, adjust),
	}
}

func (s *DisplayService) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options.Languages()
}

// SetLanguages replaces the preferred languages after checking each is a valid tag.
func (s *DisplayService) SetLanguages(languages []string, tid string) error {
	if len(languages) == 0 {
		return errNoLanguages
	}
	if err := validateLanguages(languages); err != nil {
		return err
	}

	s.mu.Lock()
	s.options.Set(utils.OptionLanguages, append([]string(nil), languages...))
	s.mu.Unlock()

	s.log.WithFields(map[string]interface{}{"transaction_id": tid, "languages": languages}).Info("Preferred languages updated")
	return nil
}

func (s *DisplayService) FormatDate(value string, onlyDate bool) string {
	return s.dates.Format(value, onlyDate)
}

func (s *DisplayService) Creator(annotation *annotations.Annotation, uris []string) CreatorInfo {
	uri, _ := annotations.CreatorURI(annotation)
	return CreatorInfo{
		URI:     uri,
		Name:    annotations.CreatorName(annotation),
		Matches: annotations.CreatorMatches(annotation, uris),
	}
}

// checkLanguages fails when the store yields no languages or a tag that no longer parses,
// as a LanguageSource may.
func (s *DisplayService) checkLanguages() (string, error) {
	languages := s.Languages()
	if len(languages) == 0 {
		s.log.WithError(errNoLanguages).Error("Preferred languages check failed")
		return "Preferred languages are missing", errNoLanguages
	}
	if err := validateLanguages(languages); err != nil {
		s.log.WithError(err).Error("Preferred languages check failed")
		return "Preferred languages cannot be used to resolve labels", err
	}
	return fmt.Sprintf("Preferred languages: %v", languages), nil
}

func validateLanguages(languages []string) error {
	for _, tag := range languages {
		if tag == utils.NoLanguage {
			continue
		}
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("invalid language tag %q: %w", tag, err)
		}
	}
	return nil
}
