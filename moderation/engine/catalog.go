package engine

// Catalog holds every pool of moderator-authored text: interventions indexed
// by tone and level, reflection prompts, conversation starters, de-escalation
// coaching, cooldown reminders, and welcome lines. It is configuration data;
// DefaultCatalog returns the stock pools but deployments can supply their
// own.
type Catalog struct {
	Interventions map[Tone]map[Level][]string
	Reflections   []string
	Starters      []string
	Mentoring     []string
	Examples      []string
	Cooldown      []string
	Welcome       []string
	// lead-in shown with health-triggered suggestions
	ResurfacedMessage string
	// templates for topic-based contextual fallbacks; each takes one topic
	TopicTemplates [2]string
	// used when no topics can be extracted from context
	GenericSuggestions []string
}

func DefaultCatalog() *Catalog {
	return &Catalog{
		Interventions: map[Tone]map[Level][]string{
			ToneReflective: {
				LevelSoft: {
					"Take a breath. What might emerge if you pause before continuing?",
					"Let's slow down for a moment. Is what you're about to say helping build understanding?",
					"A gentle reminder: this space thrives on thoughtful exchanges.",
				},
				LevelMirror: {
					"You've shared a lot. What space might we leave for the other to unfold?",
					"I notice you've been contributing actively. How might we create balance in this conversation?",
					"What might happen if you took time to reflect on what's been shared before adding more?",
				},
				LevelDisrupt: {
					"This space depends on mutual care. Perhaps it's best to return when ready to listen again.",
					"Let's pause and remember why we're here: to connect, not to convince.",
					"The quality of our conversation matters. Let's take a moment to reset our intentions.",
				},
				LevelForceDisconnect: {
					"This conversation requires mutual respect. You've been disconnected to protect the space.",
					"Due to repeated violations, you've been removed from this conversation.",
					"This space has clear boundaries. You've been disconnected due to harmful behavior.",
				},
			},
			ToneGrounded: {
				LevelSoft: {
					"Let's pause for a moment. Consider if this approach is helping the conversation.",
					"Take a moment to reflect on what you're trying to communicate here.",
					"This conversation works best when we slow down and listen to each other.",
				},
				LevelMirror: {
					"You've been sharing quite a bit. Let's make space for the other person now.",
					"I notice you've sent several messages in a row. How about giving some space for a response?",
					"Consider how the conversation might benefit from more balanced participation.",
				},
				LevelDisrupt: {
					"This conversation needs a reset. Let's take a step back and remember why we're here.",
					"The tone is getting heated. Let's pause and return to a more constructive approach.",
					"We need to rebalance this exchange. Take a moment to consider a different approach.",
				},
				LevelForceDisconnect: {
					"Due to repeated violations of our community guidelines, you've been disconnected.",
					"This conversation has been ended due to continued disruptive behavior.",
					"You've been removed from this conversation to maintain a safe space for all participants.",
				},
			},
			ToneDirective: {
				LevelSoft: {
					"Stop and consider: is this message helping build understanding?",
					"Your tone is affecting the conversation. Please adjust your approach.",
					"This is a reminder to maintain respectful communication.",
				},
				LevelMirror: {
					"You're dominating the conversation. Please allow the other person to respond.",
					"Your messages are taking up most of the space. Step back and listen.",
					"Please be mindful of balance in this conversation.",
				},
				LevelDisrupt: {
					"This approach isn't working. Please change your tone or take a break.",
					"Your communication style is disrupting the conversation. A significant change is needed.",
					"This conversation cannot continue productively with this approach.",
				},
				LevelForceDisconnect: {
					"Your behavior violates our community standards. You've been disconnected.",
					"Due to continued disruptive behavior, you've been removed from this conversation.",
					"This conversation has been terminated due to repeated violations of our guidelines.",
				},
			},
		},
		Reflections: []string{
			"What stands out to you most in what's been shared so far?",
			"Take a moment to notice: what are you feeling right now in this conversation?",
			"What question would help you understand the other person better?",
			"Is there something you'd like to explore further in what's been shared?",
			"What part of this conversation feels most meaningful to you?",
			"If you could ask one question right now, what would it be?",
			"What might happen if you shared something you're genuinely curious about?",
			"Is there a different perspective you haven't considered yet?",
			"What would help this conversation go deeper?",
			"What's one thing you've heard that resonates with you?",
			"Is there something you'd like to understand better about what's been shared?",
			"What feels important but hasn't been said yet?",
			"How might you respond if you set aside the need to be right?",
			"What would be helpful to clarify before moving forward?",
			"What's one thing you appreciate about this exchange so far?",
			"What would it be like to ask about what matters most to the other person?",
			"Is there a connection between your experiences that hasn't been explored?",
			"What would a thoughtful response look like right now?",
			"What's one assumption you might be making that could be worth examining?",
			"How might listening differently change what you hear?",
			"What would help create more understanding between you?",
			"Is there something you're holding back that might be valuable to share?",
			"What might you learn if you approached this with curiosity?",
			"What would support a more meaningful exchange right now?",
		},
		Starters: []string{
			"One hope I carry into this conversation is...",
			"What's something you've changed your mind about recently?",
			"What's something you wish more people asked you?",
			"What's a question that's been on your mind lately?",
			"What's something you're learning about yourself these days?",
			"What matters to you that you rarely get to talk about?",
		},
		Mentoring: []string{
			"Would you like help rephrasing that in a way that holds your truth while respecting theirs?",
			"I notice tension rising. Would it help to explore a different way to express your perspective?",
			"Sometimes a shift in wording can make all the difference. Would you like a suggestion?",
		},
		Examples: []string{
			"Here's one way it could sound while still sharing your view: 'I see this differently because...'",
			"Consider starting with 'From my perspective...' rather than stating your view as fact.",
			"Try framing it as 'I've had a different experience where...' to keep the conversation open.",
		},
		Cooldown: []string{
			"Let's take a breath before continuing. You'll be able to type again shortly.",
			"A moment of pause can help us respond thoughtfully. You can continue in a few seconds.",
			"Taking a brief pause. Your input will be available again soon.",
		},
		Welcome: []string{
			"Welcome. I'll be here quietly in the background to help guide the space if needed. Let's see what you both discover.",
			"Welcome, both of you. I'm here to gently support this shared space. Let's begin with curiosity and care.",
			"Welcome to this conversation. I'm here to support your dialogue when needed. Feel free to explore together.",
		},
		ResurfacedMessage: "Need a little inspiration? Here's something to refocus.",
		TopicTemplates: [2]string{
			"I'm curious about your thoughts on %s.",
			"Could you share more about how %s relates to your experience?",
		},
		GenericSuggestions: []string{
			"I'm curious to hear more about your perspective.",
			"That's an interesting point. Could you elaborate?",
		},
	}
}

// System instruction used when generating reflections over room history.
const reflectionSystemPrompt = `You are a thoughtful moderator for a space for meaningful conversation between two people.

CORE PHILOSOPHY:
This space values understanding over agreement. The conversation is a shared journey where both participants can discover new insights together.

YOUR ROLE:
- Offer brief reflections or questions that help deepen the dialogue
- Create a safe space for honest exchange
- Encourage thoughtful responses and active listening
- Help participants find common ground and mutual understanding

YOUR APPROACH:
- Keep interventions brief (1-2 sentences) and focused
- Use clear, accessible language that invites reflection
- Maintain a warm, supportive tone
- Focus on how people are connecting rather than the specific topic
- Ask questions that encourage curiosity and openness
- Notice when the conversation might benefit from a pause or shift

GUIDELINES:
- Encourage listening: Help participants truly hear each other
- Promote respect: Support a space where different perspectives are valued
- Foster presence: Invite participants to engage fully with each other
- Inspire curiosity: Encourage questions rather than assumptions
- Support connection: Help participants find meaningful points of contact
- Value pauses: Recognize that thoughtful silence can be valuable
- Embrace questions: The goal is deeper understanding, not final answers

Your role is to gently guide the conversation toward meaningful exchange without being intrusive.`
