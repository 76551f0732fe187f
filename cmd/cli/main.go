// cli es un cliente interactivo de consola para el API de stores: inicia
// sesión contra /auth/login y expone un menú para administrar stores,
// products, customers y users vía REST.
//
// Uso: go run ./cmd/cli
// La URL base se toma de API_BASE_URL (por defecto http://localhost:8080/api/v1).
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/store-api/pkg/config"
)

type client struct {
	baseURL string
	token   string
	http    *http.Client
	in      *bufio.Reader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	c := &client{
		baseURL: strings.TrimRight(cfg.CLI.BaseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		in:      bufio.NewReader(os.Stdin),
	}

	fmt.Printf("Store API CLI - %s\n", c.baseURL)
	if err := c.login(); err != nil {
		fmt.Fprintf(os.Stderr, "login: %v\n", err)
		os.Exit(1)
	}

	for {
		fmt.Println()
		fmt.Println("1) Listar stores")
		fmt.Println("2) Crear store")
		fmt.Println("3) Ver store")
		fmt.Println("4) Eliminar store")
		fmt.Println("5) Crear product")
		fmt.Println("6) Ver product")
		fmt.Println("7) Crear customer")
		fmt.Println("8) Ver customer")
		fmt.Println("9) Listar users (ADMIN)")
		fmt.Println("0) Salir")
		switch c.prompt("Opción") {
		case "1":
			c.do(http.MethodGet, "/stores", nil)
		case "2":
			body := map[string]string{
				"store_id": c.prompt("store_id"),
				"name":     c.prompt("name"),
				"address":  c.prompt("address"),
			}
			c.do(http.MethodPost, "/stores", body)
		case "3":
			c.do(http.MethodGet, "/stores/"+c.prompt("store_id"), nil)
		case "4":
			c.do(http.MethodDelete, "/stores/"+c.prompt("store_id"), nil)
		case "5":
			body := map[string]string{
				"product_id":  c.prompt("product_id"),
				"name":        c.prompt("name"),
				"description": c.prompt("description"),
				"size":        c.prompt("size"),
				"category":    c.prompt("category"),
				"price":       c.prompt("price"),
				"temperature": c.prompt("temperature (FROZEN|REFRIGERATED|AMBIENT|WARM|HOT)"),
			}
			c.do(http.MethodPost, "/products", body)
		case "6":
			c.do(http.MethodGet, "/products/"+c.prompt("product_id"), nil)
		case "7":
			body := map[string]string{
				"customer_id": c.prompt("customer_id"),
				"first_name":  c.prompt("first_name"),
				"last_name":   c.prompt("last_name"),
				"type":        c.prompt("type (REGISTERED|GUEST)"),
				"email":       c.prompt("email"),
				"address":     c.prompt("address"),
			}
			c.do(http.MethodPost, "/customers", body)
		case "8":
			c.do(http.MethodGet, "/customers/"+c.prompt("customer_id"), nil)
		case "9":
			c.do(http.MethodGet, "/users", nil)
		case "0", "q":
			return
		default:
			fmt.Println("opción no reconocida")
		}
	}
}

// login pide credenciales y guarda el token JWT.
func (c *client) login() error {
	body := map[string]string{
		"email":    c.prompt("email"),
		"password": c.prompt("password"),
	}
	payload, _ := json.Marshal(body)
	resp, err := c.http.Post(c.baseURL+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, raw)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	c.token = out.Token
	fmt.Println("sesión iniciada")
	return nil
}

// do ejecuta la petición con el token actual e imprime la respuesta.
func (c *client) do(method, path string, body any) {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "preparar petición: %v\n", err)
		return
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ejecutar petición: %v\n", err)
		return
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	fmt.Printf("HTTP %d\n%s\n", resp.StatusCode, indentJSON(raw))
}

func (c *client) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := c.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func indentJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
