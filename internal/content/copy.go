package content

// Section copy. Kept next to the item sequences so the whole page reads in one place.
const (
	HeroBadge          = "Smart Risk Assessment Platform"
	HeroTitle          = "Turn Startup Risks Into"
	HeroTitleAccent    = "Strategic Advantages"
	HeroLead           = "Empower your entrepreneurial journey with data-driven risk assessment. Get personalized insights, prioritized action plans, and the confidence to make informed decisions from day one."
	HeroSearchHint     = "Search and analyze any startup by their domain name"
	DefaultPlaceholder = "Enter startup domain (e.g., example.com)"

	ProblemTitle   = "The Hidden Challenges First-Time Entrepreneurs Face"
	ProblemLead    = "Starting a business is already challenging enough. Don't let preventable risks become the reason your startup doesn't succeed."
	ProblemCallout = "Don't become another statistic. Take control of your startup's future."

	FeaturesTitle = "Smart Features That Transform Risk Into Opportunity"
	FeaturesLead  = "Our platform combines cutting-edge technology with entrepreneurial expertise to deliver insights that actually matter."

	BenefitsTitle = "Expected Outcomes That Drive Real Results"
	BenefitsLead  = "Don't just take our word for it. See the measurable impact our platform has on entrepreneurial success."

	QABadge           = "Questions & Answers"
	QATitle           = "Have Questions About Our Platform?"
	QALead            = "Get answers to common questions or ask your own. We're here to help you make informed decisions."
	QAFormTitle       = "Ask a Question"
	QAListTitle       = "Frequently Asked Questions"
	QAFooter          = "Don't see your question here? Feel free to ask using the form above, and we'll get back to you as soon as possible."
	QAEmailLabel      = "Email Address (optional)"
	QAQuestionLabel   = "Your Question *"
	QAQuestionHint    = "What would you like to know about our risk assessment platform?"
	QASubmitLabel     = "Submit Question"
	QASubmittingLabel = "Submitting..."
	QAAcknowledgment  = "Thank you for your question! We'll get back to you soon."

	CTATitle       = "Ready to Analyze Your Next"
	CTATitleAccent = "Investment Opportunity?"
	CTALead        = "Search for any startup by domain and get instant risk assessment insights to make informed investment decisions."
	CTAPlaceholder = "Search startup domain for analysis..."
	CTASearchHint  = "Enter any startup domain to begin your risk assessment"
	CTAFooter      = "Trusted by investors worldwide • No registration required • Start searching immediately"
)
