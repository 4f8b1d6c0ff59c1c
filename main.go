package main

import (
	"flag"
	"fmt"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/blastward/engine/util"
	"github.com/memmaker/blastward/game"
	"github.com/memmaker/blastward/server"
	"os"
)

func main() {
	configFile := flag.String("config", game.DefaultConfigFile, "modifier config file")
	ticks := flag.Int("ticks", 5, "ticks to simulate after the explosion")
	debug := flag.Bool("debug", false, "log every category at debug level")
	flag.Parse()

	if *debug {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
		util.GLOBAL_LOG_CATEGORIES = util.LogModifier | util.LogEquipment | util.LogExplosion | util.LogPhysics | util.LogStore | util.LogConfig | util.LogSystem
	}

	config, err := game.LoadConfig(*configFile)
	if err != nil {
		util.LogConfigError(fmt.Sprintf("[Main] %s, using defaults", err.Error()))
		defaults := game.DefaultConfig()
		config = &defaults
	}

	demo, err := NewDemo(*config)
	if err != nil {
		util.LogConfigError(err.Error())
		os.Exit(1)
	}
	demo.Run(mgl64.Vec3{0, 64, 0}, 4, *ticks)
	for _, entity := range demo.Authority.Entities() {
		fmt.Print(entity.GetFriendlyDescription())
	}
	fmt.Print(demo.Authority.Timer().String())
}

// replicaID addresses the single presentation world the demo keeps in sync.
const replicaID = 1

// Demo pairs the authoritative world with a replica fed through a SyncBuffer.
type Demo struct {
	Authority *server.World
	Replica   *server.World
	sync      *server.SyncBuffer
}

// NewDemo spawns one armored and one unarmored soldier next to a charge, in both worlds.
func NewDemo(config game.Config) (*Demo, error) {
	authority, err := server.NewWorld("Demo", config)
	if err != nil {
		return nil, err
	}
	replica, err := server.NewReplica("Demo replica", config)
	if err != nil {
		return nil, err
	}
	demo := &Demo{Authority: authority, Replica: replica}
	demo.sync = server.NewSyncBuffer([]uint64{replicaID}, func(_ uint64, updates []server.MotionUpdate) {
		replica.ApplySync(updates)
	})

	soldier := game.DefaultLivingDefinition("Soldier")
	soldier.MaxHealth = 40
	armored, err := demo.spawn(soldier, mgl64.Vec3{3, 64, 0})
	if err != nil {
		return nil, err
	}
	for _, slot := range game.ArmorSlots() {
		armor := game.NewToolStack(fmt.Sprintf("plate_%s", slot), 250).AddModifier(config.BlastProtection.ID, 2)
		authority.Equip(armored, slot, armor)
	}
	if _, err := demo.spawn(soldier, mgl64.Vec3{-3, 64, 0}); err != nil {
		return nil, err
	}
	return demo, nil
}

func (d *Demo) spawn(definition game.LivingDefinition, position mgl64.Vec3) (*game.LivingEntity, error) {
	entity := d.Authority.Spawn(definition, position)
	if _, err := d.Replica.SpawnWithID(entity.ID(), definition, position); err != nil {
		return nil, err
	}
	return entity, nil
}

// Run detonates a charge in both worlds and simulates ticks, pushing motion updates to the replica.
func (d *Demo) Run(center mgl64.Vec3, size float64, ticks int) {
	d.Authority.Explode(center, size, "tnt")
	d.Replica.Explode(center, size, "tnt")
	for i := 0; i < ticks; i++ {
		d.sync.AddUpdatesForAll(d.Authority.Tick())
		d.Replica.Tick()
		d.sync.SendAll()
	}
}
