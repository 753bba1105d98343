package handlers

import "net/http"

// Routes bundles the handlers mounted on the API mux
type Routes struct {
	Directory  *DirectoryHandler
	Members    *MemberHandler
	Profiles   *ProfileHandler
	Middleware *Middleware
	Store      Pinger
}

// Register mounts every API route on mux
func (rt Routes) Register(mux *http.ServeMux) {
	mw := rt.Middleware

	mux.HandleFunc("GET /healthz", Health(rt.Store))

	// Location reference data
	mux.HandleFunc("GET /api/locations/states", rt.Directory.ListStates)
	mux.HandleFunc("GET /api/locations/districts", rt.Directory.ListDistricts)
	mux.HandleFunc("GET /api/locations/cities", rt.Directory.ListCities)
	mux.HandleFunc("GET /api/locations/villages", rt.Directory.ListVillages)

	// Directory views
	mux.HandleFunc("GET /api/families", rt.Directory.ListFamilies)
	mux.HandleFunc("GET /api/families/{id}/tree", rt.Directory.FamilyTree)
	mux.HandleFunc("GET /api/migrations", rt.Directory.ListMigrations)

	// Caller's own records
	mux.HandleFunc("GET /api/members", mw.RequireAccount(rt.Members.ListMembers))
	mux.HandleFunc("POST /api/members", mw.RateLimit(mw.RequireAccount(rt.Members.CreateMember)))
	mux.HandleFunc("PUT /api/members/{id}", mw.RateLimit(mw.RequireAccount(rt.Members.UpdateMember)))
	mux.HandleFunc("DELETE /api/members/{id}", mw.RateLimit(mw.RequireAccount(rt.Members.DeleteMember)))
	mux.HandleFunc("GET /api/profile", mw.RequireAccount(rt.Profiles.GetProfile))
	mux.HandleFunc("PUT /api/profile", mw.RateLimit(mw.RequireAccount(rt.Profiles.UpdateProfile)))
}
