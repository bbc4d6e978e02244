/*
Package notesdk provides a client SDK for the memoa notes service, together
with the request and response types the server itself encodes.

# Overview

There are no sessions or tokens. Every operation that needs an identity takes
the user id returned by Register or Login, and deactivation re-sends the
password:

	client := notesdk.NewClient("http://localhost:8080")

	user, err := client.Register(ctx, notesdk.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})

	note, err := client.CreateNote(ctx, user.ID, "buy milk")
	notes, err := client.ListNotes(ctx, user.ID)
	err = client.DeleteNote(ctx, note.ID)

	err = client.Deactivate(ctx, user.ID, "correct horse")

# Error Handling

Any non-success response is returned as an *APIError carrying the HTTP status
and the error code from the body:

	_, err := client.Login(ctx, "ada@example.com", "wrong")
	var apiErr *notesdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == notesdk.ErrorCodeInvalidCredentials {
		// ...
	}
*/
package notesdk
