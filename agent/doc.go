// Package agent is the conversational front end of the realtor assistant.
//
// An Agent owns one transcript. Each Chat call sends the user's message, the system prompt,
// the full transcript and the tool catalog to the model in a single request, records the reply,
// and dispatches every requested tool to its handler. Tool results are held until the next
// request so the transcript stays valid for the Messages API:
//
//	a := agent.New(client)
//	res, err := a.Chat(ctx, "Post my 3BHK in Hinjewadi to 99acres", map[string]any{"realtor_id": "r-42"})
//
// Continue sends held results back without new user text; FollowUp repeats that until the
// model stops asking for tools.
package agent
