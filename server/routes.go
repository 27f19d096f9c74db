package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(api chi.Router) {
		// ticket slice
		api.Get("/tickets", srv.TicketHandler.GetTickets)
		api.Post("/tickets", srv.TicketHandler.CreateTicket)

		// asset slice
		api.Get("/assets", srv.AssetHandler.GetAllAssets)
		api.Get("/assets/stats", srv.AssetHandler.GetAssetStats)
		api.Get("/asset", srv.AssetHandler.GetAssetByID)
		api.Post("/asset", srv.AssetHandler.CreateAsset)
		api.Post("/asset/available", srv.AssetHandler.MarkAssetAvailable)
		api.Post("/asset/in-use", srv.AssetHandler.MarkAssetInUse)
	})

	return r
}
