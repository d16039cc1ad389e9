package domain

import "context"

// Language is the detected language of a user query.
type Language string

const (
	LanguageTamil   Language = "tamil"
	LanguageEnglish Language = "english"
	LanguageUnknown Language = "unknown"
)

// Intent is the action a user wants performed on a service.
type Intent string

const (
	IntentDownload       Intent = "download"
	IntentReissue        Intent = "reissue"
	IntentCorrection     Intent = "correction"
	IntentRenewal        Intent = "renewal"
	IntentStatus         Intent = "status"
	IntentApply          Intent = "apply"
	IntentDocuments      Intent = "documents"
	IntentProcedure      Intent = "procedure"
	IntentContact        Intent = "contact"
	IntentFees           Intent = "fees"
	IntentEligibility    Intent = "eligibility"
	IntentGeneralInquiry Intent = "general_inquiry"
)

// Topic is a coarse service category inferred from keywords.
type Topic string

const TopicGeneral Topic = "general"

// ResponseType classifies the kind of reply the pipeline produced.
type ResponseType string

const (
	ResponseGreeting      ResponseType = "greeting"
	ResponseFarewell      ResponseType = "farewell"
	ResponseClarification ResponseType = "clarification"
	ResponseFollowUp      ResponseType = "follow_up"
	ResponseNoResults     ResponseType = "no_results"
	ResponseServiceInfo   ResponseType = "service_info"
)

// QueryAnalysis is the immutable result of classifying one user query.
type QueryAnalysis struct {
	Language   Language
	Intent     Intent
	Topic      Topic
	Keywords   []string
	Normalized string
	Original   string
}

// ServiceRecord is the canonical bilingual description of one government
// service and its application procedure.
type ServiceRecord struct {
	ID             string   `json:"id"`
	NameEN         string   `json:"name_en"`
	NameTA         string   `json:"name_ta"`
	DescriptionEN  string   `json:"description_en"`
	DescriptionTA  string   `json:"description_ta"`
	Department     string   `json:"department"`
	DepartmentTA   string   `json:"department_ta"`
	Requirements   []string `json:"requirements"`
	RequirementsTA []string `json:"requirements_ta"`
	Procedure      []string `json:"procedure"`
	ProcedureTA    []string `json:"procedure_ta"`
	Fees           string   `json:"fees"`
	FeesTA         string   `json:"fees_ta"`
	ProcessingTime string   `json:"processing_time"`
	Contact        string   `json:"contact"`
	URL            string   `json:"url"`
}

// Name returns the service name in the given language, defaulting to English.
func (r ServiceRecord) Name(lang Language) string {
	if lang == LanguageTamil {
		return r.NameTA
	}
	return r.NameEN
}

// Document is the metadata stored alongside each vector in the index.
type Document struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameTA string `json:"name_ta"`
}

// SearchResult is a matching document with its similarity score. The
// score is derived from cosine distance d as 1/(1+d), so it lives in
// (0, 1] for non-negative vectors and ranking by score is ranking by
// cosine similarity.
type SearchResult struct {
	Document Document
	Score    float64
}

// Response is the structured reply returned for one user turn.
type Response struct {
	Text        string
	Type        ResponseType
	Language    Language
	ServiceID   string
	ServiceName string
}

// Turn records one exchange of a conversation.
type Turn struct {
	User     string        `json:"user"`
	Bot      string        `json:"bot"`
	Analysis QueryAnalysis `json:"-"`
}

// State is the mutable per-conversation context. It is owned by exactly
// one conversation and never shared across conversation IDs.
type State struct {
	LastService *ServiceRecord `json:"last_service,omitempty"`
	Turns       []Turn         `json:"turns,omitempty"`
}

// Embedder converts free text into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
// EmbedBatch embeds many texts in one call, preserving input order;
// remote implementations use it to avoid one round trip per text.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(text string) ([]float64, error)
	EmbedBatch(texts []string) ([][]float64, error)
}

// RecordStore is the read interface over the service record table.
type RecordStore interface {
	Get(ctx context.Context, id string) (*ServiceRecord, error)
	List(ctx context.Context) ([]ServiceRecord, error)
}

// ConversationStore keeps per-conversation dialogue state. AppendTurn
// records one exchange atomically: concurrent appends to the same
// conversation never lose turns, and a non-nil service replaces the
// conversation's last-service context in the same operation. Different
// conversations are fully independent.
type ConversationStore interface {
	Get(ctx context.Context, conversationID string) (State, error)
	AppendTurn(ctx context.Context, conversationID string, turn Turn, service *ServiceRecord) error
}
