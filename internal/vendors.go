package internal

import (
	"net/http"
	"strings"
)

type createVendorRequest struct {
	ShopName string
	Owner    string
	Contact  string
}

func (s *Server) createVendor(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	in := createVendorRequest{
		ShopName: r.PostFormValue("shop_name"),
		Owner:    r.PostFormValue("owner"),
		Contact:  r.PostFormValue("contact"),
	}

	v, err := s.Ledger.CreateVendor(r.Context(), in.ShopName, in.Owner, in.Contact)
	if err != nil {
		s.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

// LIST with optional text search & pagination; default is the full list
func (s *Server) listVendors(w http.ResponseWriter, r *http.Request) {
	params := parseListParams(r)

	vendors, err := s.Ledger.Vendors(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if params.q != "" {
		q := strings.ToLower(params.q)
		filtered := vendors[:0:0]
		for _, v := range vendors {
			if strings.Contains(strings.ToLower(v.ShopName), q) ||
				strings.Contains(strings.ToLower(v.Owner), q) {
				filtered = append(filtered, v)
			}
		}
		vendors = filtered
	}

	writeJSON(w, http.StatusOK, paginate(vendors, params))
}
