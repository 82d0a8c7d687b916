// Package memory holds the conversation transcript of one agent instance.
//
// Model:
//   - Entries are role-tagged (user / assistant) Messages API params, appended in order.
//   - Nothing is pruned and nothing is written to disk; the transcript lives as long as its agent.
//   - Tool results travel in user entries, ahead of any text, right after the assistant entry
//     that requested them.
package memory
