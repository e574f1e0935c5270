// Package content holds the compiled-in copy for every landing page section.
// The sequences are built once at start-up and never mutated; accessors hand
// out copies so callers cannot alter them.
package content

import (
	"slices"
	"time"

	"github.com/nfrund/risq/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Hero stat figures.
const (
	EntrepreneurCount  = 1000
	SuccessRatePercent = 85
)

var printer = message.NewPrinter(language.English)

// sections is the fixed render order of the page.
var sections = []domain.Section{
	domain.SectionHero,
	domain.SectionProblem,
	domain.SectionFeatures,
	domain.SectionBenefits,
	domain.SectionQA,
	domain.SectionCTA,
}

var heroHighlights = []domain.Highlight{
	{Icon: domain.IconUsers, Label: printer.Sprintf("%d+ Entrepreneurs", EntrepreneurCount)},
	{Icon: domain.IconTrendingUp, Label: printer.Sprintf("%d%% Success Rate", SuccessRatePercent)},
	{Icon: domain.IconShield, Label: "Risk-Free Assessment"},
}

// BenefitsCallout closes the Benefits section.
var BenefitsCallout = printer.Sprintf("Join %d+ entrepreneurs who've transformed their startup journey", EntrepreneurCount)

var problems = []domain.DisplayItem{
	{
		Icon:        domain.IconAlertTriangle,
		Title:       "Blind Spot Risks",
		Description: "First-time entrepreneurs often miss critical risks that experienced founders spot immediately, leading to costly oversights.",
	},
	{
		Icon:        domain.IconTrendingDown,
		Title:       "Poor Decision-Making",
		Description: "Without data-driven insights, entrepreneurs make gut decisions that can drain resources and derail their startup journey.",
	},
	{
		Icon:        domain.IconDollarSign,
		Title:       "Resource Depletion",
		Description: "Ineffective risk prioritization leads to wasted time, money, and energy on low-impact activities while critical issues go unaddressed.",
	},
	{
		Icon:        domain.IconClock,
		Title:       "Increased Failure Rate",
		Description: "Statistics show that 90% of startups fail, often due to preventable risks that could have been identified and mitigated early.",
	},
}

var features = []domain.DisplayItem{
	{
		Icon:        domain.IconBrain,
		Title:       "AI-Powered Risk Analysis",
		Description: "Advanced algorithms analyze your startup across multiple dimensions including business model, market dynamics, and financial exposure.",
		Accent:      "from-blue-500 to-cyan-500",
	},
	{
		Icon:        domain.IconTarget,
		Title:       "Personalized Risk Profiling",
		Description: "Get a customized risk assessment based on your specific industry, location, experience level, and business model.",
		Accent:      "from-purple-500 to-pink-500",
	},
	{
		Icon:        domain.IconBarChart,
		Title:       "Priority-Based Insights",
		Description: "Automatically prioritize risks by impact and likelihood, so you focus your limited resources on what matters most.",
		Accent:      "from-green-500 to-emerald-500",
	},
	{
		Icon:        domain.IconLightbulb,
		Title:       "Actionable Recommendations",
		Description: "Receive specific, implementable strategies to mitigate each identified risk, with step-by-step guidance.",
		Accent:      "from-orange-500 to-red-500",
	},
	{
		Icon:        domain.IconZap,
		Title:       "Real-Time Updates",
		Description: "Your risk profile evolves as your startup grows, with continuous monitoring and updated recommendations.",
		Accent:      "from-indigo-500 to-blue-500",
	},
	{
		Icon:        domain.IconCheckCircle,
		Title:       "Success Tracking",
		Description: "Monitor your progress in addressing risks and see how your overall risk score improves over time.",
		Accent:      "from-teal-500 to-green-500",
	},
}

var outcomes = []domain.Outcome{
	{
		DisplayItem: domain.DisplayItem{
			Icon:        domain.IconCheckCircle,
			Title:       "Informed Decision-Making",
			Description: "Gain a clear, prioritized risk profile that transforms uncertainty into strategic advantage.",
		},
		Stat:      "3x Better",
		StatLabel: "Decision Quality",
	},
	{
		DisplayItem: domain.DisplayItem{
			Icon:        domain.IconShield,
			Title:       "Proactive Risk Mitigation",
			Description: "Address high-priority risks early with actionable suggestions that prevent critical failures.",
		},
		Stat:      "75% Fewer",
		StatLabel: "Critical Issues",
	},
	{
		DisplayItem: domain.DisplayItem{
			Icon:        domain.IconClock,
			Title:       "Operational Efficiency",
			Description: "Enable rapid feedback and iteration cycles that accelerate your path to product-market fit.",
		},
		Stat:      "50% Faster",
		StatLabel: "Time to Market",
	},
	{
		DisplayItem: domain.DisplayItem{
			Icon:        domain.IconTrendingUp,
			Title:       "Increased Success Rate",
			Description: "Join the 15% of startups that succeed by making data-driven decisions from day one.",
		},
		Stat:      "5x Higher",
		StatLabel: "Success Probability",
	},
}

var faq = []domain.QAEntry{
	{
		ID:        1,
		Question:  "How does your risk assessment platform work?",
		Answer:    "Our platform analyzes startup domains using advanced algorithms to evaluate various risk factors including market viability, financial stability, competitive landscape, and team expertise. We provide comprehensive reports with actionable insights.",
		CreatedAt: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        2,
		Question:  "What types of startups can I analyze?",
		Answer:    "You can analyze any startup with an online presence. Our platform works with companies across all industries and stages, from early-stage startups to established businesses looking to expand.",
		CreatedAt: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:        3,
		Question:  "How accurate are your risk assessments?",
		Answer:    "Our assessments have an 85% success rate based on historical data. We use multiple data sources and machine learning algorithms to provide the most accurate risk evaluation possible.",
		CreatedAt: time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
	},
}

var ctaHighlights = []domain.Highlight{
	{Icon: domain.IconStar, Label: "Instant Analysis", Tone: "text-yellow-400"},
	{Icon: domain.IconZap, Label: "Real-time Data", Tone: "text-green-400"},
	{Icon: domain.IconUsers, Label: "Expert Insights", Tone: "text-blue-400"},
}

// Sections returns the landing page sections in render order.
func Sections() []domain.Section { return slices.Clone(sections) }

// HeroHighlights returns the badges shown under the hero search bar.
func HeroHighlights() []domain.Highlight { return slices.Clone(heroHighlights) }

// Problems returns the problem statement cards.
func Problems() []domain.DisplayItem { return slices.Clone(problems) }

// Features returns the feature cards.
func Features() []domain.DisplayItem { return slices.Clone(features) }

// Outcomes returns the benefit cards.
func Outcomes() []domain.Outcome { return slices.Clone(outcomes) }

// FAQ returns the sample question and answer entries, newest first.
func FAQ() []domain.QAEntry { return slices.Clone(faq) }

// CTAHighlights returns the badges shown under the call-to-action search bar.
func CTAHighlights() []domain.Highlight { return slices.Clone(ctaHighlights) }
