// Package todosdk is a Go client for the todo list REST API.
//
// The Client keeps a cookie jar, so a successful Register or Login makes the
// session cookie available to every later call:
//
//	c := todosdk.NewClient("http://localhost:8080")
//	if _, err := c.Login(ctx, "alice", "secret"); err != nil {
//		return err
//	}
//	todos, err := c.ListTodos(ctx, todosdk.ListOptions{})
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the envelope message.
package todosdk
