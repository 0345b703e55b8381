// Package author resolves the author of an incoming post to a local user.
//
// The chain is: the login named in the payload when that user exists, a user
// provisioned from author_data (role author, random password hash), the
// "admin" and "administrador" accounts, and finally the configured service
// user. Resolution never fails.
package author
