package bloggen

import (
	"fmt"
	"strings"

	"server/internal/domain"
)

// TargetWordCount maps a length tier to the textual word-count guidance
// embedded in the prompt. The mapping is total; unknown tiers get the
// medium range.
func TargetWordCount(length string) string {
	switch length {
	case "short":
		return "300-500"
	case "long":
		return "900-1200"
	case "extra_long":
		return "1500-3000"
	default:
		return "600-800"
	}
}

const systemInstruction = "You are a professional content writer specializing in blog creation for any business, project, event, or topic. Create engaging, SEO-friendly blog posts that help organizations connect with their audience. \n\nIMPORTANT: Follow the established Blog Content Structure Guidelines for consistent formatting:\n- Use proper heading hierarchy (H1 > H2 > H3 > H4)\n- Apply strategic emoji usage for engagement\n- Maintain clean, professional formatting\n- Include highlighting for key points (✨ 💡 🎯 ⭐ 🔥 💎)\n- Use proper list formatting (• for bullets, 1. 2. 3. for numbered)\n- Focus on readability and professional appearance\n- Avoid markdown artifacts and excessive symbols\n\n"

const imageSystemSuffix = "You excel at naturally integrating images into blog content with appropriate captions and placement suggestions."

const contentRequirements = "\n\nCONTENT REQUIREMENTS:\nWrite a compelling, well-structured blog post that follows the established blog content structure guidelines. IMPORTANT: Use clean, simple formatting without any markdown artifacts or unnecessary symbols.\n\nREFERENCE: Follow the Blog Content Structure Guidelines for consistent formatting and professional appearance.\n\nBLOG CONTENT STRUCTURE REFERENCE:\n- **H1**: Main blog title with strategic emojis (# Title ✨)\n- **H2**: Major sections with relevant emojis (## Section 🌟)\n- **H3**: Subsections with descriptive emojis (### Subsection 💡)\n- **H4**: Detailed points when needed (#### Detail ⭐)\n- **Lists**: Use • for bullets, 1. 2. 3. for numbered lists\n- **Highlighting**: Use ✨ 💡 🎯 ⭐ 🔥 💎 for key points\n- **Bold Text**: Use **text** for emphasis with highlighting\n- **Clean Formatting**: No markdown artifacts or excessive symbols\n\nPlease generate the complete blog post content following the established Blog Content Structure Guidelines. Ensure proper hierarchical formatting, strategic emoji usage, clear headings, and engaging structure. Focus on creating valuable content that readers will find informative, visually appealing, and enjoyable to read while maintaining the professional formatting standards."

// BuildPrompt assembles the system instruction and the user prompt for a
// normalized request. Pure string construction; the image block and the
// image sentence of the system instruction appear only when an analysis
// is present.
func BuildPrompt(req domain.BlogRequest, analysis *ImageAnalysis) (system, prompt string) {
	system = systemInstruction
	if analysis != nil {
		system += imageSystemSuffix
	}

	var b strings.Builder
	b.WriteString("Create a professional, engaging blog post for a business, project, event, product, organization, or topic with the following specifications:\n\n")
	b.WriteString("DETAILS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", req.MainName)
	fmt.Fprintf(&b, "- Type/Category: %s\n", orNotSpecified(req.Type))
	fmt.Fprintf(&b, "- Industry/Field: %s\n", orNotSpecified(req.Industry))
	fmt.Fprintf(&b, "- Location: %s\n\n", orNotSpecified(req.Location))
	b.WriteString("BLOG SPECIFICATIONS:\n")
	fmt.Fprintf(&b, "- Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "- Target Audience: %s\n", req.TargetAudience)
	fmt.Fprintf(&b, "- Writing Tone: %s\n", req.Tone)
	fmt.Fprintf(&b, "- Target Length: %s words\n\n", TargetWordCount(req.Length))
	b.WriteString("ADDITIONAL INFORMATION:\n")
	if req.KeyPoints != "" {
		fmt.Fprintf(&b, "- Key Points to Include: %s\n", req.KeyPoints)
	}
	if req.SpecialFeatures != "" {
		fmt.Fprintf(&b, "- Special Features: %s\n", req.SpecialFeatures)
	}
	if analysis != nil {
		b.WriteString(imageInstructions(analysis))
	}
	b.WriteString(contentRequirements)
	return system, b.String()
}

func imageInstructions(analysis *ImageAnalysis) string {
	details := make([]string, 0, len(analysis.ImageDetails))
	for _, img := range analysis.ImageDetails {
		details = append(details, fmt.Sprintf("%s (%s)", img.Name, img.SuggestedPlacement))
	}
	return fmt.Sprintf(
		"\n\nIMAGE INTEGRATION:\n- Total Images: %d\n- Image Details: %s\n- Integration Suggestions: %s\n\nWhen writing the blog post, naturally incorporate mentions of these images in appropriate sections. Include suggested captions and placement hints in your content.",
		analysis.TotalImages,
		strings.Join(details, ", "),
		strings.Join(analysis.IntegrationSuggestions, "; "),
	)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
