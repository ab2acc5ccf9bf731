package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"stylet/internal/relay"
)

func main() {
	addr := flag.String("addr", ":9444", "listen address")
	secret := flag.String("secret", "", "shared secret for signature checks")
	flag.Parse()

	http.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		if !relay.Verify(*secret, body, r.Header.Get(relay.SignatureHeader)) {
			http.Error(w, "bad signature", 403)
			return
		}
		var p relay.Payload
		if err := json.Unmarshal(body, &p); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		fmt.Printf("[%s] %s %s\n", p.SentAt.Format(time.RFC3339), p.ID, p.Text)
		w.WriteHeader(http.StatusAccepted)
	})

	log.Println("relaysink listening on", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
