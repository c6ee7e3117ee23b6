package repl

import (
	"bufio"
	"fmt"
	"strings"

	"stockmaster/internal/app"
	"stockmaster/internal/core"
)

// prompt reads one line, returning nil when the user kept the default.
func prompt(reader *bufio.Reader, label, current string) *string {
	fmt.Printf("  %s [%s]: ", label, current)
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// handleAddProduct runs the interactive add-product form. Blank answers
// keep the draft defaults; numeric answers are coerced leniently.
func handleAddProduct(reader *bufio.Reader, svc app.ApplicationService) {
	draft := svc.NewProductDraft()
	fmt.Println("New product. Leave a field blank to keep the default.")

	req := app.SaveProductRequest{
		Name:         prompt(reader, "Name", draft.Name),
		SKU:          prompt(reader, "SKU", draft.SKU),
		Category:     prompt(reader, "Category", draft.Category),
		StockLevel:   prompt(reader, "Stock level", fmt.Sprintf("%d", draft.StockLevel)),
		Available:    prompt(reader, "Available", fmt.Sprintf("%d", draft.Available)),
		ReorderPoint: prompt(reader, "Reorder point", fmt.Sprintf("%d", draft.ReorderPoint)),
		UnitPrice:    prompt(reader, "Unit price", draft.UnitPrice.StringFixed(2)),
	}

	result, err := svc.SaveProduct(req)
	if err != nil {
		fmt.Printf("[REPL] Error saving product: %v\n", err)
		return
	}
	fmt.Printf("\nProduct created (ID: %s, Status: %s).\n", result.Product.ID, result.Product.Status)
}

// handleEditProduct runs the interactive edit form against an existing
// product. Blank answers keep the current values; the status answer is
// stored as given, it is not reclassified.
func handleEditProduct(reader *bufio.Reader, svc app.ApplicationService, id string) {
	listed := svc.ListProducts("", core.CategoryAll)
	var current *core.Product
	for i := range listed.Products {
		if listed.Products[i].ID == id {
			current = &listed.Products[i]
			break
		}
	}
	if current == nil {
		fmt.Printf("Product %s not found.\n", id)
		return
	}

	fmt.Printf("Editing %s — %s. Leave a field blank to keep the current value.\n", current.ID, current.Name)

	req := app.SaveProductRequest{
		ID:           id,
		Name:         prompt(reader, "Name", current.Name),
		SKU:          prompt(reader, "SKU", current.SKU),
		Category:     prompt(reader, "Category", current.Category),
		StockLevel:   prompt(reader, "Stock level", fmt.Sprintf("%d", current.StockLevel)),
		Available:    prompt(reader, "Available", fmt.Sprintf("%d", current.Available)),
		ReorderPoint: prompt(reader, "Reorder point", fmt.Sprintf("%d", current.ReorderPoint)),
		UnitPrice:    prompt(reader, "Unit price", current.UnitPrice.StringFixed(2)),
		Status:       prompt(reader, "Status", string(current.Status)),
	}

	result, err := svc.SaveProduct(req)
	if err != nil {
		fmt.Printf("[REPL] Error saving product: %v\n", err)
		return
	}
	fmt.Printf("\nProduct %s updated (last updated %s).\n", result.Product.ID, result.Product.LastUpdated)
}

// handleProfile shows the profile and optionally applies the settings form.
func handleProfile(reader *bufio.Reader, svc app.ApplicationService) {
	user := svc.GetUser()
	fmt.Printf("Name  : %s\nEmail : %s\nRole  : %s\n", user.Name, user.Email, user.Role)

	fmt.Print("Edit profile? (y/N): ")
	confirm, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		return
	}

	req := app.UpdateProfileRequest{}
	if v := prompt(reader, "Name", user.Name); v != nil {
		req.Name = *v
	}
	if v := prompt(reader, "Email", user.Email); v != nil {
		req.Email = *v
	}
	if v := prompt(reader, "Avatar URL", user.AvatarURL); v != nil {
		req.AvatarURL = *v
	}

	updated := svc.UpdateProfile(req)
	fmt.Printf("Profile saved for %s <%s>.\n", updated.Name, updated.Email)
}
