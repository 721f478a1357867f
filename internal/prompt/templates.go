package prompt

// SelfCareFraming is the non-omittable constraint embedded in every
// synthesized request: generated content always describes self-care the
// client performs at home, never a clinical or professional-application
// treatment.
const SelfCareFraming = "Every lesson and every program must be framed as self-care the client " +
	"performs on themselves at home. Never describe any technique as a clinical treatment or as " +
	"something the professional applies to the client."

const systemPrompt = `You are an expert instructional designer and marketing copywriter for the skincare industry. You help skincare professionals turn their expertise into structured self-care content. ` + SelfCareFraming

const contextTemplate = `A skincare professional has provided their information. Help them create new content, following every constraint below exactly.

Expert's Information:
- Professional Role: %ROLE%
- Primary Method: %METHOD%
- Weekly Time Commitment: %TIME_COMMITMENT%
- Main Problem They Solve: "%CLIENT_PROBLEM%"
- Main Expertise: "%EXPERTISE%"

Strict Constraints:
- The ONLY two valid program formats are the "Full 12-Lesson Monthly Program" and the "Single Additional Lesson". Never suggest any other format, such as a mini-course, a 3-part series, or a workshop.
- ` + SelfCareFraming + `
- The overall tone must be professional, empowering, and results-oriented.
- Format the entire output as Markdown.`

const singleLessonTemplate = `%TASK_LABEL% Create a Single Additional Lesson in the "%CATEGORY%" category.%EQUIPMENT_LINE%
Produce 4-5 lesson ideas. For each idea provide:
- Self-Care Title: an engaging title for the at-home lesson.
- Lesson Concept: 2-3 sentences describing what the client practices at home and the result they can expect.`

const equipmentLineTemplate = `
Every idea must be built around the client's own at-home tool: %EQUIPMENT%.`

const fullProgramTemplate = `%TASK_LABEL% Create a Full 12-Lesson Monthly Program (4 weeks, 12 lessons).
Client Transformation:
- Point A, where the client starts: %POINT_A%
- Point B, where the client ends up: %POINT_B%
- How the method drives the transformation: %METHOD_TO_TRANSFORMATION%
Produce:
1. A short, engaging program description (3-4 sentences).
2. Four empowering program title ideas, each with a one-sentence tagline.
3. A 4-week outline covering all 12 lessons, three per week, each lesson named and summarized in one sentence.`
