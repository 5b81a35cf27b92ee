package clarity

// Lens is one of the three top-level clarity categories.
type Lens string

const (
	LensUser   Lens = "user"
	LensVisual Lens = "visual"
	LensStory  Lens = "story"
)

// Dimension identifies one scored facet of a lens.
type Dimension string

const (
	DimOffer       Dimension = "offer"
	DimNavigation  Dimension = "navigation"
	DimAction      Dimension = "action"
	DimConsistency Dimension = "consistency"
	DimTone        Dimension = "tone"
	DimEnvironment Dimension = "environment"
	DimPurpose     Dimension = "purpose"
	DimEmotion     Dimension = "emotion"
	DimIdentity    Dimension = "identity"
)

// lensOrder fixes the enumeration order used for tie breaking.
var lensOrder = []Lens{LensUser, LensVisual, LensStory}

var lensDimensions = map[Lens][3]Dimension{
	LensUser:   {DimOffer, DimNavigation, DimAction},
	LensVisual: {DimConsistency, DimTone, DimEnvironment},
	LensStory:  {DimPurpose, DimEmotion, DimIdentity},
}

// Request captures the payload accepted by the clarity endpoint.
type Request struct {
	URL           string         `json:"url"`
	Context       string         `json:"context"`
	ScopeLabel    string         `json:"scopeLabel"`
	ClientMetrics *ClientMetrics `json:"clientMetrics"`
}

// ClientMetrics carries pre-computed sub-scores from a client-side visual
// analyzer. Values are already normalized to [0,1]; nil fields keep the
// 0.5 default.
type ClientMetrics struct {
	VisualConsistency *float64 `json:"visualConsistency"`
	VisualTone        *float64 `json:"visualTone"`
	VisualEnvironment *float64 `json:"visualEnvironment"`
	StoryEmotion      *float64 `json:"storyEmotion"`
	StoryIdentity     *float64 `json:"storyIdentity"`
}

// Report is serialized back to API consumers. Every one of the nine scores
// is always present and sits inside [1,5], whatever failed upstream.
type Report struct {
	Scores    LensScores  `json:"scores"`
	Reasons   LensReasons `json:"reasons"`
	QuickWins []QuickWin  `json:"quickWins"`
}

// LensScores groups the nine 1-5 scores by lens.
type LensScores struct {
	User   UserScores   `json:"user"`
	Visual VisualScores `json:"visual"`
	Story  StoryScores  `json:"story"`
}

type UserScores struct {
	Offer      int `json:"offer"`
	Navigation int `json:"navigation"`
	Action     int `json:"action"`
}

type VisualScores struct {
	Consistency int `json:"consistency"`
	Tone        int `json:"tone"`
	Environment int `json:"environment"`
}

type StoryScores struct {
	Purpose  int `json:"purpose"`
	Emotion  int `json:"emotion"`
	Identity int `json:"identity"`
}

// LensReasons mirrors LensScores with one short justification per score.
type LensReasons struct {
	User   UserReasons   `json:"user"`
	Visual VisualReasons `json:"visual"`
	Story  StoryReasons  `json:"story"`
}

type UserReasons struct {
	Offer      string `json:"offer"`
	Navigation string `json:"navigation"`
	Action     string `json:"action"`
}

type VisualReasons struct {
	Consistency string `json:"consistency"`
	Tone        string `json:"tone"`
	Environment string `json:"environment"`
}

type StoryReasons struct {
	Purpose  string `json:"purpose"`
	Emotion  string `json:"emotion"`
	Identity string `json:"identity"`
}

// QuickWin is a templated recommendation targeting one weak lens.
type QuickWin struct {
	Title string `json:"title"`
	Tip   string `json:"tip"`
}

// Config wires runtime settings for the clarity domain.
type Config struct {
	Model      string
	MaxTextLen int
}
