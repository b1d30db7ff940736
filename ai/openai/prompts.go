package openai

const classificationSystemPrompt = `Classify the user's query for a job-search assistant and return the verdict as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. Your output must exactly follow this schema:

{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "category": {
      "type": "string",
      "enum": ["job_listing_request", "analytical_question", "general_question"]
    },
    "confidence": {
      "type": "number",
      "minimum": 0,
      "maximum": 1
    },
    "rag_suitable": {
      "type": "boolean"
    },
    "reasoning": {
      "type": "string"
    }
  },
  "required": ["category", "confidence", "rag_suitable", "reasoning"],
  "additionalProperties": false
}

Rules:
- "job_listing_request" means the user wants to see concrete job postings.
- "analytical_question" means the user asks about the job market itself: trends, comparisons, statistics.
- "general_question" is everything else, including questions unrelated to jobs.
- rag_suitable is true only when searching a database of job postings would genuinely help answer the query.
- reasoning is one short sentence.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "find machine learning jobs in Berlin"
Output:
{"category":"job_listing_request","confidence":0.95,"rag_suitable":true,"reasoning":"explicit request for job postings with a skill and location"}

Example:
Input: "which companies are hiring the most data engineers"
Output:
{"category":"analytical_question","confidence":0.85,"rag_suitable":true,"reasoning":"asks about hiring patterns across companies"}

Example:
Input: "jobs"
Output:
{"category":"job_listing_request","confidence":0.5,"rag_suitable":false,"reasoning":"too broad to search meaningfully"}

Example:
Input: "how do I write a good resume"
Output:
{"category":"general_question","confidence":0.9,"rag_suitable":false,"reasoning":"career advice, not answerable from job postings"}`
