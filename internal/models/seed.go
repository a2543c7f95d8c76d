package models

// SeedProducts is the catalog written on first start.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Uniforme Jardín Completo", Price: 12500, Category: "uniforme-jardin", Stock: 25, Image: "fas fa-baby"},
		{ID: 2, Name: "Uniforme Primaria Completo", Price: 15000, Category: "uniforme-primaria", Stock: 30, Image: "fas fa-graduation-cap"},
		{ID: 3, Name: "Uniforme Secundaria Completo", Price: 18000, Category: "uniforme-secundaria", Stock: 20, Image: "fas fa-user-graduate"},
		{ID: 4, Name: "Uniforme Deportivo", Price: 8500, Category: "uniforme-deportivo", Stock: 40, Image: "fas fa-running"},
		{ID: 5, Name: "Bordado Personalizado", Price: 2500, Category: "bordado", Stock: 100, Image: "fas fa-cut"},
		{ID: 6, Name: "Sublimación Personalizada", Price: 3500, Category: "sublimacion", Stock: 50, Image: "fas fa-palette"},
	}
}

// SeedSchools is the school list written on first start.
func SeedSchools() []string {
	return []string{
		"Escuela San Martín", "Colegio Nacional", "Instituto Santa María", "Escuela Técnica",
		"Jardín Pequeños Genios", "Colegio Bilingüe", "Escuela Rural", "Instituto Comercial",
		"Jardín Arco Iris", "Colegio Católico", "Escuela de Arte", "Instituto Tecnológico",
	}
}
