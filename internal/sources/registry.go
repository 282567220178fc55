// Package sources holds the static registry of scraping sources.
// Sources are data, not code: each descriptor carries the kind tag that
// selects a fetcher.
package sources

import "github.com/kulhunter/eventis-backend/internal/models"

// Registry is the ordered list of configured sources. The Eventbrite API
// source has no URL; its endpoint is built per page from the city.
var Registry = []models.SourceDescriptor{
	{Name: "Eventbrite (API)", Kind: models.SourceAPI, City: "Santiago"},
	{Name: "Eventbrite (Web HTML)", Kind: models.SourceHTML, URL: "https://www.eventbrite.cl/d/chile/events/", City: "Nacional"},

	// Aggregators and large cultural venues.
	{Name: "PanoramasGratis.cl", Kind: models.SourceHTML, URL: "https://panoramasgratis.cl/", City: "Nacional"},
	{Name: "SantiagoCultura.cl", Kind: models.SourceHTML, URL: "https://www.santiagocultura.cl/", City: "Santiago"},
	{Name: "ValpoCultura.cl", Kind: models.SourceHTML, URL: "https://valpocultura.cl/", City: "Valparaíso"},
	{Name: "ConcepciónCultural.cl", Kind: models.SourceHTML, URL: "https://www.concepcioncultural.cl/", City: "Concepción"},
	{Name: "TodoEnConce.cl", Kind: models.SourceHTML, URL: "https://www.todoenconce.cl/", City: "Concepción"},
	{Name: "Día de los Patrimonios", Kind: models.SourceHTML, URL: "https://www.diadelospatrimonios.cl/", City: "Nacional"},
	{Name: "Centro Gabriela Mistral (GAM)", Kind: models.SourceHTML, URL: "https://gam.cl/cartelera/", City: "Santiago"},
	{Name: "Centro Cultural La Moneda", Kind: models.SourceHTML, URL: "https://www.cclm.cl/actividades/", City: "Santiago"},
	{Name: "Teatro Municipal de Santiago", Kind: models.SourceHTML, URL: "https://municipal.cl/cartelera", City: "Santiago"},
	{Name: "Corp. Cultural Las Condes", Kind: models.SourceHTML, URL: "https://www.culturallascondes.cl/", City: "Santiago"},
	{Name: "Cultura Providencia", Kind: models.SourceHTML, URL: "https://culturaprovidencia.cl/", City: "Santiago"},

	// Museums and universities.
	{Name: "Biblioteca Nacional", Kind: models.SourceHTML, URL: "https://www.bibliotecanacional.gob.cl/", City: "Santiago"},
	{Name: "Biblioteca de Santiago", Kind: models.SourceHTML, URL: "https://www.bibliotecasantiago.gob.cl/", City: "Santiago"},
	{Name: "Universidad de Chile (Agenda)", Kind: models.SourceHTML, URL: "https://uchile.cl/agenda", City: "Santiago"},
	{Name: "USACH (Agenda)", Kind: models.SourceHTML, URL: "https://www.usach.cl/agenda-usach", City: "Santiago"},
	{Name: "Planetario USACH", Kind: models.SourceHTML, URL: "https://planetariochile.cl/", City: "Santiago"},
	{Name: "Museo Nacional de Historia Natural", Kind: models.SourceHTML, URL: "https://www.mnhn.gob.cl/", City: "Santiago"},
	{Name: "Museo de la Memoria y DD.HH.", Kind: models.SourceHTML, URL: "https://museodelamemoria.cl/", City: "Santiago"},
	{Name: "Museo Chileno de Arte Precolombino", Kind: models.SourceHTML, URL: "https://museo.precolombino.cl/", City: "Santiago"},
	{Name: "Museo Artequin", Kind: models.SourceHTML, URL: "https://artequin.cl/", City: "Santiago"},

	// Specialized.
	{Name: "Cineteca Nacional de Chile", Kind: models.SourceHTML, URL: "https://www.cclm.cl/cineteca-nacional-de-chile/", City: "Santiago"},
	{Name: "CineChile.cl", Kind: models.SourceHTML, URL: "https://cinechile.cl/cartelera/", City: "Nacional"},
	{Name: "Retina Latina", Kind: models.SourceHTML, URL: "https://www.retinalatina.org/", City: "Nacional"},
	{Name: "Testing en Chile", Kind: models.SourceHTML, URL: "https://www.testingenchile.cl/", City: "Santiago"},
	{Name: "Congreso Futuro", Kind: models.SourceHTML, URL: "https://congresofuturo.cl/", City: "Nacional"},
	{Name: "Bicineta.cl", Kind: models.SourceHTML, URL: "https://www.bicineta.cl/eventos", City: "Nacional"},
	{Name: "IBBY Chile", Kind: models.SourceHTML, URL: "https://www.ibbychile.cl/", City: "Santiago"},
	{Name: "Calavera Lectora", Kind: models.SourceHTML, URL: "https://calaveralectora.org/", City: "Nacional"},
	{Name: "Bandsintown", Kind: models.SourceHTML, URL: "https://www.bandsintown.com/es/c/chile", City: "Nacional"},

	// RSS feeds.
	{Name: "Santiago Secreto (RSS)", Kind: models.SourceRSS, URL: "https://santiagosecreto.com/feed/", City: "Santiago"},
	{Name: "La Tercera Finde (RSS)", Kind: models.SourceRSS, URL: "https://www.latercera.com/finde/feed/", City: "Nacional"},
	{Name: "Chilevisión Panoramas (RSS)", Kind: models.SourceRSS, URL: "https://www.chilevision.cl/tag/panoramas-gratis/feed", City: "Nacional"},
	{Name: "Chile es Tuyo (RSS)", Kind: models.SourceRSS, URL: "https://chileestuyo.cl/feed/", City: "Nacional"},
	{Name: "El Mostrador Cultura (RSS)", Kind: models.SourceRSS, URL: "https://www.elmostrador.cl/cultura/feed/", City: "Nacional"},
	{Name: "Diario Concepción Cultura (RSS)", Kind: models.SourceRSS, URL: "https://www.diarioconcepcion.cl/cultura/feed/", City: "Concepción"},

	// Municipal agendas.
	{Name: "Municipalidad de Antofagasta", Kind: models.SourceHTML, URL: "https://www.municipalidadantofagasta.cl/cultura/", City: "Antofagasta"},
	{Name: "Municipalidad de La Serena", Kind: models.SourceHTML, URL: "https://www.laserena.cl/agenda/", City: "La Serena"},
	{Name: "Municipalidad de Coquimbo", Kind: models.SourceHTML, URL: "https://www.municoquimbo.cl/cultura/", City: "Coquimbo"},
	{Name: "Municipalidad de Viña del Mar", Kind: models.SourceHTML, URL: "https://www.munivina.cl/agenda/", City: "Viña del Mar"},
	{Name: "Municipalidad de Puerto Montt", Kind: models.SourceHTML, URL: "https://www.puertomontt.cl/cultura/", City: "Puerto Montt"},
}
