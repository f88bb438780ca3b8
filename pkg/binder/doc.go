// Package binder fills dto records from HTTP requests.
//
// Each Binder reads one part of the request: JSON for application/json
// bodies, Form for urlencoded and multipart bodies, Query for the URL query
// and Path for wildcards of the standard library mux. Bind runs several
// binders on one record, New creates the record as well:
//
//	func createUser(w http.ResponseWriter, r *http.Request) {
//		req, err := binder.New[*CreateUser](r, binder.Path("org"), binder.JSON())
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		if !req.Validate() {
//			writeJSON(w, http.StatusUnprocessableEntity, req.Errors().Messages())
//			return
//		}
//		...
//	}
//
// String input is trimmed with sanitizer.TrimStrings by default; use
// WithSanitizer to change or disable that. Errors wrap the package
// sentinels (ErrUnsupportedMediaType, ErrFailedToParseJSON, ...) and can be
// matched with errors.Is.
package binder
