package content

// Icon names a glyph rendered next to a card or stat.
type Icon string

const (
	IconArrowRight   Icon = "arrow-right"
	IconArrowUpRight Icon = "arrow-up-right"
	IconBarChart     Icon = "bar-chart"
	IconCheckCircle  Icon = "check-circle"
	IconPieChart     Icon = "pie-chart"
	IconTarget       Icon = "target"
	IconTrendingUp   Icon = "trending-up"
	IconUsers        Icon = "users"
)

// knownIcons is the set of icons cards may reference.
var knownIcons = map[Icon]bool{
	IconArrowRight:   true,
	IconArrowUpRight: true,
	IconBarChart:     true,
	IconCheckCircle:  true,
	IconPieChart:     true,
	IconTarget:       true,
	IconTrendingUp:   true,
	IconUsers:        true,
}

// Content is all copy shown on the landing page, in render order.
type Content struct {
	Brand    string   `yaml:"brand"`
	Title    string   `yaml:"title"`
	Hero     Hero     `yaml:"hero"`
	Problem  Problem  `yaml:"problem"`
	Services Services `yaml:"services"`
	Proof    Proof    `yaml:"proof"`
	Pricing  Pricing  `yaml:"pricing"`
	CTA      CTA      `yaml:"cta"`
	Footer   Footer   `yaml:"footer"`
}

// Hero is the first screen: badge, two-line headline and quick stats.
type Hero struct {
	Badge          string      `yaml:"badge"`
	Headline       string      `yaml:"headline"`
	HeadlineAccent string      `yaml:"headline_accent"`
	Subheadline    string      `yaml:"subheadline"`
	PrimaryCTA     string      `yaml:"primary_cta"`
	SecondaryCTA   string      `yaml:"secondary_cta"`
	Image          string      `yaml:"image,omitempty"`
	Stats          []QuickStat `yaml:"stats"`
}

// QuickStat is a value/label pair shown under the hero buttons.
type QuickStat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Card is an icon, title and one-line description.
type Card struct {
	Icon  Icon   `yaml:"icon"`
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
}

// Problem describes the pain points the agency addresses.
type Problem struct {
	Headline    string `yaml:"headline"`
	Subheadline string `yaml:"subheadline"`
	Body        string `yaml:"body"`
	Cards       []Card `yaml:"cards"`
}

// Services lists what the agency offers.
type Services struct {
	Headline    string `yaml:"headline"`
	Subheadline string `yaml:"subheadline"`
	Cards       []Card `yaml:"cards"`
}

// ProofStat is a headline metric with its explanation.
type ProofStat struct {
	Metric string `yaml:"metric"`
	Label  string `yaml:"label"`
	Desc   string `yaml:"desc"`
}

// Proof is the dark outcomes section.
type Proof struct {
	Headline string      `yaml:"headline"`
	Body     string      `yaml:"body"`
	LinkText string      `yaml:"link_text"`
	Stats    []ProofStat `yaml:"stats"`
}

// Tier is one column of the pricing table.
type Tier struct {
	Name     string   `yaml:"name"`
	Price    string   `yaml:"price"`
	Period   string   `yaml:"period"`
	Desc     string   `yaml:"desc"`
	Popular  bool     `yaml:"popular,omitempty"`
	Features []string `yaml:"features"`
}

// Pricing is the pricing table and its setup-fee note.
type Pricing struct {
	Headline     string `yaml:"headline"`
	Subheadline  string `yaml:"subheadline"`
	PopularLabel string `yaml:"popular_label"`
	Tiers        []Tier `yaml:"tiers"`
	SetupFee     string `yaml:"setup_fee"`
	SetupFeeNote string `yaml:"setup_fee_note"`
}

// CTA is the closing call-to-action block.
type CTA struct {
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"`
	Button   string `yaml:"button"`
}

// Footer holds the copyright holder.
type Footer struct {
	Company string `yaml:"company"`
}
