package service

import "soltana-store-api/internal/model"

// defaultWilayas is the bundled delivery-fee table, used whenever the
// backend has no wilaya rows. Fees are in DZD.
var defaultWilayas = []model.Wilaya{
	{ID: "1", Name: "Adrar", DeliveryHome: 1400, DeliveryPost: 900},
	{ID: "2", Name: "Chlef", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "3", Name: "Laghouat", DeliveryHome: 950, DeliveryPost: 600},
	{ID: "4", Name: "Oum El Bouaghi", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "5", Name: "Batna", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "6", Name: "Béjaïa", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "7", Name: "Biskra", DeliveryHome: 900, DeliveryPost: 550},
	{ID: "8", Name: "Béchar", DeliveryHome: 1100, DeliveryPost: 650},
	{ID: "9", Name: "Blida", DeliveryHome: 600, DeliveryPost: 400},
	{ID: "10", Name: "Bouira", DeliveryHome: 700, DeliveryPost: 450},
	{ID: "11", Name: "Tamanrasset", DeliveryHome: 1600, DeliveryPost: 1050},
	{ID: "12", Name: "Tébessa", DeliveryHome: 900, DeliveryPost: 500},
	{ID: "13", Name: "Tlemcen", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "14", Name: "Tiaret", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "15", Name: "Tizi Ouzou", DeliveryHome: 700, DeliveryPost: 450},
	{ID: "16", Name: "Alger", DeliveryHome: 500, DeliveryPost: 350},
	{ID: "17", Name: "Djelfa", DeliveryHome: 950, DeliveryPost: 600},
	{ID: "18", Name: "Jijel", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "19", Name: "Sétif", DeliveryHome: 750, DeliveryPost: 450},
	{ID: "20", Name: "Saïda", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "21", Name: "Skikda", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "22", Name: "Sidi Bel Abbès", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "23", Name: "Annaba", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "24", Name: "Guelma", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "25", Name: "Constantine", DeliveryHome: 750, DeliveryPost: 450},
	{ID: "26", Name: "Médéa", DeliveryHome: 700, DeliveryPost: 450},
	{ID: "27", Name: "Mostaganem", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "28", Name: "M'Sila", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "29", Name: "Mascara", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "30", Name: "Ouargla", DeliveryHome: 1000, DeliveryPost: 650},
	{ID: "31", Name: "Oran", DeliveryHome: 700, DeliveryPost: 450},
	{ID: "32", Name: "El Bayadh", DeliveryHome: 1050, DeliveryPost: 600},
	{ID: "33", Name: "Illizi", DeliveryHome: 1700, DeliveryPost: 1100},
	{ID: "34", Name: "Bordj Bou Arréridj", DeliveryHome: 750, DeliveryPost: 450},
	{ID: "35", Name: "Boumerdès", DeliveryHome: 600, DeliveryPost: 400},
	{ID: "36", Name: "El Tarf", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "37", Name: "Tindouf", DeliveryHome: 1600, DeliveryPost: 1050},
	{ID: "38", Name: "Tissemsilt", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "39", Name: "El Oued", DeliveryHome: 1000, DeliveryPost: 600},
	{ID: "40", Name: "Khenchela", DeliveryHome: 900, DeliveryPost: 500},
	{ID: "41", Name: "Souk Ahras", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "42", Name: "Tipaza", DeliveryHome: 600, DeliveryPost: 400},
	{ID: "43", Name: "Mila", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "44", Name: "Aïn Defla", DeliveryHome: 750, DeliveryPost: 450},
	{ID: "45", Name: "Naâma", DeliveryHome: 1050, DeliveryPost: 600},
	{ID: "46", Name: "Aïn Témouchent", DeliveryHome: 850, DeliveryPost: 500},
	{ID: "47", Name: "Ghardaïa", DeliveryHome: 950, DeliveryPost: 600},
	{ID: "48", Name: "Relizane", DeliveryHome: 800, DeliveryPost: 450},
	{ID: "49", Name: "Timimoun", DeliveryHome: 1400, DeliveryPost: 900},
	{ID: "50", Name: "Bordj Badji Mokhtar", DeliveryHome: 1700, DeliveryPost: 1100},
	{ID: "51", Name: "Ouled Djellal", DeliveryHome: 950, DeliveryPost: 600},
	{ID: "52", Name: "Béni Abbès", DeliveryHome: 1400, DeliveryPost: 900},
	{ID: "53", Name: "In Salah", DeliveryHome: 1600, DeliveryPost: 1050},
	{ID: "54", Name: "In Guezzam", DeliveryHome: 1700, DeliveryPost: 1100},
	{ID: "55", Name: "Touggourt", DeliveryHome: 1000, DeliveryPost: 600},
	{ID: "56", Name: "Djanet", DeliveryHome: 1700, DeliveryPost: 1100},
	{ID: "57", Name: "El M'Ghair", DeliveryHome: 1000, DeliveryPost: 600},
	{ID: "58", Name: "El Meniaa", DeliveryHome: 1100, DeliveryPost: 650},
}

// DefaultWilayas returns a copy of the bundled delivery-fee table.
func DefaultWilayas() []model.Wilaya {
	out := make([]model.Wilaya, len(defaultWilayas))
	copy(out, defaultWilayas)
	return out
}
