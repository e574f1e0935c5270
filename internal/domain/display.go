package domain

// Icon is an iconify identifier, e.g. "lucide:shield".
type Icon string

// Icons used across the landing page sections.
const (
	IconShield        Icon = "lucide:shield"
	IconTrendingUp    Icon = "lucide:trending-up"
	IconTrendingDown  Icon = "lucide:trending-down"
	IconUsers         Icon = "lucide:users"
	IconAlertTriangle Icon = "lucide:triangle-alert"
	IconDollarSign    Icon = "lucide:dollar-sign"
	IconClock         Icon = "lucide:clock"
	IconBrain         Icon = "lucide:brain"
	IconTarget        Icon = "lucide:target"
	IconBarChart      Icon = "lucide:chart-column"
	IconLightbulb     Icon = "lucide:lightbulb"
	IconZap           Icon = "lucide:zap"
	IconCheckCircle   Icon = "lucide:circle-check"
	IconStar          Icon = "lucide:star"
	IconSearch        Icon = "lucide:search"
	IconSend          Icon = "lucide:send"
	IconMessage       Icon = "lucide:message-circle"
	IconHelp          Icon = "lucide:circle-help"
)

// DisplayItem is one card or bullet in a marketing section.
type DisplayItem struct {
	Icon        Icon
	Title       string
	Description string
	// Accent is an optional tailwind gradient, e.g. "from-blue-500 to-cyan-500".
	Accent string
}

// Outcome is a benefit card with a headline statistic.
type Outcome struct {
	DisplayItem
	Stat      string
	StatLabel string
}

// Highlight is a short icon + label badge shown under the hero and CTA.
type Highlight struct {
	Icon  Icon
	Label string
	// Tone is an optional text colour class for the icon.
	Tone string
}

// Section names a landing page section in render order.
type Section string

const (
	SectionHero     Section = "hero"
	SectionProblem  Section = "problem"
	SectionFeatures Section = "features"
	SectionBenefits Section = "benefits"
	SectionQA       Section = "qa"
	SectionCTA      Section = "cta"
)
