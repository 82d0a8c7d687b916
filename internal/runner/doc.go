// Package runner performs one exchange with the Anthropic Messages API and dispatches the tool
// calls in the response.
//
// A Step sends the system prompt, the conversation and the tool catalog, then executes every
// tool_use block in response order. Results are returned as Calls; the caller decides when to
// send them back:
//
//	user(text) -> assistant(text, tool_use...) -> user(tool_result..., text) -> ...
package runner
