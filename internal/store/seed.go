package store

import "github.com/Emeralddossou/detecporc/internal/models"

// defaultPoints is the catalog written on first boot when no points
// document exists: ten points of sale around Porto-Novo.
var defaultPoints = []models.Point{
	{
		ID:      1,
		Name:    "Boucherie Porc d'Or",
		Lat:     6.4969,
		Lng:     2.6036,
		Address: "Quartier Zogbo, Porto-Novo",
		Phone:   "+229 90 00 11 22",
		Hours:   "Lun-Sam 07:00-19:00",
		Comment: "Boucherie traditionnelle, porc frais chaque matin.",
	},
	{
		ID:      2,
		Name:    "Porc & Co - Marche Central",
		Lat:     6.4979,
		Lng:     2.6065,
		Address: "Marche Central, Stand B12",
		Phone:   "+229 94 20 33 10",
		Hours:   "Lun-Sam 06:30-18:30",
		Comment: "Stand B12, marinades maison.",
	},
	{
		ID:      3,
		Name:    "Chez Mama Porc",
		Lat:     6.4935,
		Lng:     2.6001,
		Address: "Rue des Artisans",
		Phone:   "+229 62 01 88 77",
		Hours:   "Lun-Dim 08:00-20:00",
		Comment: "Vente a emporter, portions pretes.",
	},
	{
		ID:      4,
		Name:    "Le Charcutier Porto",
		Lat:     6.502,
		Lng:     2.61,
		Address: "Avenue des Marins",
		Phone:   "+229 67 55 10 40",
		Hours:   "Mar-Dim 08:00-19:30",
		Comment: "Charcuterie seche et saucisses.",
	},
	{
		ID:      5,
		Name:    "Marche Akpakpa - Porc",
		Lat:     6.49,
		Lng:     2.598,
		Address: "Akpakpa, Zone commerciale",
		Phone:   "+229 95 15 44 00",
		Hours:   "Lun-Sam 07:00-18:00",
		Comment: "Petit prix, service rapide.",
	},
	{
		ID:      6,
		Name:    "Boucherie Moderne",
		Lat:     6.505,
		Lng:     2.595,
		Address: "Boulevard des Nations",
		Phone:   "+229 98 31 20 05",
		Hours:   "Lun-Sam 08:00-19:00",
		Comment: "Hygiene controlee.",
	},
	{
		ID:      7,
		Name:    "Porc Express",
		Lat:     6.51,
		Lng:     2.607,
		Address: "Rue du Port",
		Phone:   "+229 96 04 12 55",
		Hours:   "Lun-Dim 07:30-20:30",
		Comment: "Livraison locale possible.",
	},
	{
		ID:      8,
		Name:    "Maison du Porc",
		Lat:     6.4878,
		Lng:     2.6122,
		Address: "Quartier Gbekon",
		Phone:   "+229 91 73 54 12",
		Hours:   "Mer-Dim 09:00-19:00",
		Comment: "Preparations fumees.",
	},
	{
		ID:      9,
		Name:    "Le Coin des Cochons",
		Lat:     6.499,
		Lng:     2.593,
		Address: "Carrefour Atinkou",
		Phone:   "+229 60 40 10 22",
		Hours:   "Lun-Sam 07:00-18:30",
		Comment: "Rabais le week-end.",
	},
	{
		ID:      10,
		Name:    "Stand Porc du Port",
		Lat:     6.5035,
		Lng:     2.5995,
		Address: "Digue du Port",
		Phone:   "+229 94 11 82 60",
		Hours:   "Lun-Sam 06:00-18:00",
		Comment: "Fraicheur du jour garantie.",
	},
}
