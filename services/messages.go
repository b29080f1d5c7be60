package services

// Mensajes que recibe el cliente
const (
	MsgNoInfo            = "No se encontro la informacion"
	MsgCharacterNotFound = "No se encontro el personaje"
	MsgPlanetNotFound    = "No se encontro el planeta"
	MsgUserNotFound      = "No se encontro el usuario"
	MsgTargetNotFound    = "No se encontro la informacion suministrada"
	MsgFavoriteExists    = "el favorito ya existe"
	MsgServerDown        = "server down"
	MsgCharacterDown     = "Server down"

	MsgCharacterCreated = "Personaje creado"
	MsgPlanetCreated    = "Planeta creado"

	MsgPlanetFavoriteAdded    = "Planeta favorito añadido"
	MsgCharacterFavoriteAdded = "Personaje favorito añadido"

	MsgNoFavorites              = "No se encontraron favoritos para el usuario seleccionado"
	MsgPlanetFavoriteRemoved    = "Se elimino el planeta de favoritos"
	MsgCharacterFavoriteRemoved = "Se elimino el personaje de favoritos"
	MsgPlanetFavoriteNotFound   = "No se encontro el planeta favorito"
	MsgCharFavoriteNotFound     = "No se encontro el personaje favorito"

	MsgHello = "Hello, this is your GET /user response "
)
