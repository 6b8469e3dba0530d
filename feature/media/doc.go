// Package media stores menu imagery on the object storage bucket.
//
// Objects live under the `media/` prefix of the shared bucket. Names are
// cleaned and rejected when they would escape the prefix.
//
// # HTTP Endpoints
//
//   - GET    /media        : List stored objects.
//   - PUT    /media/:name  : Upload an object.
//   - GET    /media/:name  : Stream an object.
//   - DELETE /media/:name  : Delete an object.
package media
