// Package webapp provisions the App Service side of a run: the plan and web
// app, the managed domain bound to the root zone, and the custom host-name
// binding that depends on DNS propagation.
package webapp
